package glcore

// SceneOption configures a Scene.
type SceneOption func(*sceneOptions)

type sceneOptions struct {
	clear  Color
	usage  Usage
	layout VertexAttribute
}

func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		clear:  DefaultClearColor,
		usage:  StaticDraw,
		layout: PositionAttribute,
	}
}

// WithClearColor sets the color the frame is cleared to before drawing.
func WithClearColor(c Color) SceneOption {
	return func(o *sceneOptions) { o.clear = c }
}

// WithUsage sets the usage hint for the vertex upload.
func WithUsage(u Usage) SceneOption {
	return func(o *sceneOptions) { o.usage = u }
}

// WithAttribute replaces the vertex layout. The default is PositionAttribute.
func WithAttribute(a VertexAttribute) SceneOption {
	return func(o *sceneOptions) { o.layout = a }
}

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	reloads    <-chan ShaderSources
	reloadFunc func() (ShaderSources, error)
	frameLimit int
}

// WithReloadChannel makes Run rebuild the program from every ShaderSources
// received on ch. Receives never block the loop.
func WithReloadChannel(ch <-chan ShaderSources) RunOption {
	return func(o *runOptions) { o.reloads = ch }
}

// WithReloadFunc sets the function Run calls on EventReload.
func WithReloadFunc(fn func() (ShaderSources, error)) RunOption {
	return func(o *runOptions) { o.reloadFunc = fn }
}

// WithFrameLimit stops Run after n frames. Zero means no limit.
func WithFrameLimit(n int) RunOption {
	return func(o *runOptions) { o.frameLimit = n }
}
