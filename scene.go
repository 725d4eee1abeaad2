package glcore

import "fmt"

// Scene is a drawable state: one vertex array, one vertex buffer and an
// active program.
type Scene struct {
	d       Driver
	vao     *VertexArray
	vbo     *Buffer
	program *ShaderProgram
	count   int32
	clear   Color
}

// NewScene uploads vertices, declares their layout, builds the program from
// src and activates it. On failure everything allocated so far is released.
func NewScene(d Driver, vertices []Vertex, src ShaderSources, opts ...SceneOption) (*Scene, error) {
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.layout.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{d: d, count: int32(len(vertices)), clear: o.clear}

	var err error
	s.vao, err = NewVertexArray(d)
	if err != nil {
		return nil, fmt.Errorf("vertex array: %w", err)
	}
	s.vao.Bind()

	s.vbo, err = NewBuffer(d, ArrayBuffer)
	if err != nil {
		s.Delete()
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}
	s.vbo.Bind()
	BufferData(d, ArrayBuffer, VertexBytes(vertices), o.usage)

	DeclareAttribute(d, o.layout)
	EnableAttribute(d, o.layout.Index)

	s.program, err = ProgramFromVertFrag(d, src.Vertex, src.Fragment)
	if err != nil {
		s.Delete()
		return nil, fmt.Errorf("shader program: %w", err)
	}
	s.program.Activate()

	d.ClearColor(o.clear.R, o.clear.G, o.clear.B, o.clear.A)
	return s, nil
}

// Program returns the active program.
func (s *Scene) Program() *ShaderProgram { return s.program }

// VertexArray returns the scene's vertex array.
func (s *Scene) VertexArray() *VertexArray { return s.vao }

// VertexBuffer returns the scene's vertex buffer.
func (s *Scene) VertexBuffer() *Buffer { return s.vbo }

// ClearColor returns the background color.
func (s *Scene) ClearColor() Color { return s.clear }

// Draw clears the frame and draws the vertices as triangles.
func (s *Scene) Draw() {
	s.d.Clear(ColorBufferBit)
	s.d.DrawArrays(Triangles, 0, s.count)
}

// Reload builds a new program from src. On failure the current program
// stays active and the error is returned.
func (s *Scene) Reload(src ShaderSources) error {
	p, err := ProgramFromVertFrag(s.d, src.Vertex, src.Fragment)
	if err != nil {
		return err
	}
	p.Activate()
	if s.program != nil {
		s.program.Delete()
	}
	s.program = p
	Logger().Info("shader program reloaded", "handle", p.Handle())
	return nil
}

// Delete releases the program, the vertex buffer and the vertex array.
func (s *Scene) Delete() {
	if s.program != nil {
		ClearActiveProgram(s.d)
		s.program.Delete()
		s.program = nil
	}
	if s.vbo != nil {
		ClearBufferBinding(s.d, ArrayBuffer)
		s.vbo.Delete()
		s.vbo = nil
	}
	if s.vao != nil {
		ClearVertexArrayBinding(s.d)
		s.vao.Delete()
		s.vao = nil
	}
}
