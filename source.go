package glcore

import "os"

// ShaderSources holds the source text for the two pipeline stages.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// ReadShaderSource reads the source for one stage from path.
func ReadShaderSource(stage Stage, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceError{Stage: stage, Path: path, Err: err}
	}
	return string(b), nil
}

// LoadShaderSources reads the vertex and fragment sources from their own
// paths.
func LoadShaderSources(vertPath, fragPath string) (ShaderSources, error) {
	vert, err := ReadShaderSource(VertexStage, vertPath)
	if err != nil {
		return ShaderSources{}, err
	}
	frag, err := ReadShaderSource(FragmentStage, fragPath)
	if err != nil {
		return ShaderSources{}, err
	}
	return ShaderSources{Vertex: vert, Fragment: frag}, nil
}
