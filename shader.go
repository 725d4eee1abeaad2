package glcore

// Shader owns a single shader-stage object.
type Shader struct {
	d      Driver
	handle uint32
	stage  Stage
}

// NewShader allocates an empty shader object for the given stage.
func NewShader(d Driver, stage Stage) (*Shader, error) {
	h := d.CreateShader(stage)
	if h == 0 {
		return nil, &AllocationError{Object: ObjectShader}
	}
	Logger().Debug("shader allocated", "handle", h, "stage", stage)
	return &Shader{d: d, handle: h, stage: stage}, nil
}

// ShaderFromSource allocates a shader, sets its source and compiles it.
// If compilation fails the shader is released and a *CompileError carrying
// the compiler log is returned.
func ShaderFromSource(d Driver, stage Stage, source string) (*Shader, error) {
	s, err := NewShader(d, stage)
	if err != nil {
		return nil, err
	}
	s.SetSource(source)
	s.Compile()
	if s.CompileSuccess() {
		return s, nil
	}
	out := s.InfoLog()
	s.Delete()
	return nil, &CompileError{Stage: stage, Log: out}
}

// Handle returns the driver handle, or 0 once the shader has been deleted.
func (s *Shader) Handle() uint32 { return s.handle }

// Stage returns the pipeline stage of the shader.
func (s *Shader) Stage() Stage { return s.stage }

// SetSource replaces the source text of the shader.
func (s *Shader) SetSource(source string) {
	if !s.live("set source") {
		return
	}
	s.d.ShaderSource(s.handle, source)
}

// Compile compiles the current source. Check the outcome with CompileSuccess.
func (s *Shader) Compile() {
	if !s.live("compile") {
		return
	}
	s.d.CompileShader(s.handle)
}

// CompileSuccess reports whether the last compilation succeeded.
func (s *Shader) CompileSuccess() bool {
	if s.handle == 0 {
		return false
	}
	return s.d.GetShaderiv(s.handle, CompileStatus) == True
}

// InfoLog returns the compiler log for the shader.
func (s *Shader) InfoLog() string {
	if s.handle == 0 {
		return ""
	}
	return readDiagnosticLog(s.handle, s.d.GetShaderiv, s.d.GetShaderInfoLog)
}

// Delete releases the shader object. Calling Delete again is a no-op.
func (s *Shader) Delete() {
	if s.handle == 0 {
		return
	}
	s.d.DeleteShader(s.handle)
	Logger().Debug("shader deleted", "handle", s.handle, "stage", s.stage)
	s.handle = 0
}

func (s *Shader) live(op string) bool {
	if s.handle != 0 {
		return true
	}
	Logger().Warn("shader already deleted", "op", op, "stage", s.stage)
	return false
}
