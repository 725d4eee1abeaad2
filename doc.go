/*
Package glcore wraps the OpenGL objects needed to draw a triangle: vertex
buffers, vertex-array state, shader objects and shader programs.

# Overview

Every wrapper owns exactly one driver handle and releases it exactly once.
Constructors return a typed error instead of a zero handle, and every failure
path releases whatever was allocated before it. The package talks to the
graphics API only through the Driver interface, so it runs unchanged against
the real OpenGL backend (backend/opengl) or the in-memory double (gltest).

# Quick Start

	window, _ := opengl.OpenWindow(opengl.DefaultWindowConfig())
	defer window.Close()

	src, err := glcore.LoadShaderSources("shaders/vert_shader.glsl", "shaders/frag_shader.glsl")
	if err != nil {
	    return err
	}
	scene, err := glcore.NewScene(window.Driver(), glcore.TriangleVertices, src)
	if err != nil {
	    return err
	}
	defer scene.Delete()

	return glcore.Run(window, scene)

# Building a Program by Hand

ProgramFromVertFrag is the usual entry point. The steps it performs are also
available one at a time:

	vs, err := glcore.ShaderFromSource(d, glcore.VertexStage, vert)
	fs, err := glcore.ShaderFromSource(d, glcore.FragmentStage, frag)
	p, err := glcore.NewShaderProgram(d)
	p.AttachShader(vs)
	p.AttachShader(fs)
	ok := p.Link()
	p.DetachShader(vs)
	p.DetachShader(fs)
	vs.Delete()
	fs.Delete()

# Errors

  - *AllocationError: the driver returned handle 0 (matches ErrAllocation)
  - *CompileError: a stage was rejected; Log holds the compiler output
  - *LinkError: linking failed; Log holds the linker output
  - *SourceError: a shader file could not be read (matches ErrMissingSource
    when the file is absent)

# Binding Slots

Buffer data uploads and attribute declarations act on whatever object is
currently bound to the relevant slot. The driver keeps one slot per buffer
kind plus one for the vertex array, and the most recent bind wins. Always
bind immediately before the call that depends on it:

	vao.Bind()
	vbo.Bind()
	glcore.BufferData(d, glcore.ArrayBuffer, glcore.VertexBytes(verts), glcore.StaticDraw)
	glcore.DeclareAttribute(d, glcore.PositionAttribute)
	glcore.EnableAttribute(d, 0)

# Threading

A Driver is bound to the thread that owns the GL context. Nothing in this
package is safe for concurrent use.
*/
package glcore
