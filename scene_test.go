package glcore_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glcore"
	"github.com/go-theft-auto/glcore/gltest"
)

var triangleSources = glcore.ShaderSources{
	Vertex:   gltest.VertexSource,
	Fragment: gltest.FragmentSource,
}

func TestNewSceneReachesDrawableState(t *testing.T) {
	d := gltest.NewDriver()
	s, err := glcore.NewScene(d, glcore.TriangleVertices, triangleSources)
	require.NoError(t, err)
	require.Empty(t, d.Draws())

	prog := s.Program().Handle()
	assert.Equal(t, prog, d.CurrentProgram())
	assert.True(t, d.IsLinked(prog))

	vao := s.VertexArray().Handle()
	assert.Equal(t, vao, d.BoundVertexArray())
	a, ok := d.Attribute(vao, 0)
	require.True(t, ok)
	assert.True(t, a.Enabled)
	assert.Equal(t, int32(3), a.Components)
	assert.Equal(t, glcore.Float, a.Type)
	assert.Equal(t, s.VertexBuffer().Handle(), a.Buffer)

	data, usage, ok := d.BufferContents(s.VertexBuffer().Handle())
	require.True(t, ok)
	assert.Equal(t, glcore.VertexBytes(glcore.TriangleVertices), data)
	assert.Equal(t, glcore.StaticDraw, usage)

	c := glcore.DefaultClearColor
	assert.Equal(t, [4]float32{c.R, c.G, c.B, c.A}, d.ClearColorValue())
	assert.Equal(t, 0, d.Live(glcore.ObjectShader))
	assert.Empty(t, d.Violations())
}

func TestNewSceneCallOrder(t *testing.T) {
	d := gltest.NewDriver()
	_, err := glcore.NewScene(d, glcore.TriangleVertices, triangleSources)
	require.NoError(t, err)

	names := d.CallNames()
	idx := func(name string) int {
		i := slices.Index(names, name)
		require.GreaterOrEqual(t, i, 0, "%s not called", name)
		return i
	}
	assert.Less(t, idx("BindVertexArray"), idx("BindBuffer"))
	assert.Equal(t, idx("BindBuffer")+1, idx("BufferData"), "upload not immediately after bind")
	assert.Less(t, idx("BufferData"), idx("VertexAttribPointer"))
	assert.Less(t, idx("VertexAttribPointer"), idx("EnableVertexAttribArray"))
	assert.Less(t, idx("EnableVertexAttribArray"), idx("UseProgram"))
	assert.NotContains(t, names, "DrawArrays")
}

func TestSceneDraw(t *testing.T) {
	d := gltest.NewDriver()
	s, err := glcore.NewScene(d, glcore.TriangleVertices, triangleSources)
	require.NoError(t, err)

	s.Draw()
	s.Draw()

	require.Len(t, d.Draws(), 2)
	draw := d.Draws()[0]
	assert.Equal(t, glcore.Triangles, draw.Mode)
	assert.Equal(t, int32(0), draw.First)
	assert.Equal(t, int32(3), draw.Count)
	assert.Equal(t, s.Program().Handle(), draw.Program)
	assert.Equal(t, 2, d.Clears())
	assert.Empty(t, d.Violations())
}

func TestSceneOptions(t *testing.T) {
	d := gltest.NewDriver()
	attr := glcore.PositionAttribute
	attr.Index = 1
	s, err := glcore.NewScene(d, glcore.TriangleVertices, triangleSources,
		glcore.WithClearColor(glcore.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}),
		glcore.WithUsage(glcore.DynamicDraw),
		glcore.WithAttribute(attr),
	)
	require.NoError(t, err)

	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, d.ClearColorValue())
	assert.Equal(t, glcore.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}, s.ClearColor())
	_, usage, _ := d.BufferContents(s.VertexBuffer().Handle())
	assert.Equal(t, glcore.DynamicDraw, usage)
	a, ok := d.Attribute(s.VertexArray().Handle(), 1)
	require.True(t, ok)
	assert.True(t, a.Enabled)
}

func TestNewSceneInvalidLayout(t *testing.T) {
	d := gltest.NewDriver()
	_, err := glcore.NewScene(d, glcore.TriangleVertices, triangleSources,
		glcore.WithAttribute(glcore.VertexAttribute{Components: 7, Type: glcore.Float}))
	require.Error(t, err)
	assert.Empty(t, d.Calls(), "driver touched before layout was checked")
}

func TestNewSceneReleasesOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		fail    glcore.ObjectKind
		src     glcore.ShaderSources
		wantMsg string
	}{
		{"vertex array", glcore.ObjectVertexArray, triangleSources, "vertex array: allocate vertex array"},
		{"buffer", glcore.ObjectBuffer, triangleSources, "vertex buffer: allocate buffer"},
		{"program", glcore.ObjectProgram, triangleSources, "shader program: allocate program"},
		{"fragment", -1, glcore.ShaderSources{Vertex: gltest.VertexSource, Fragment: gltest.BrokenSource}, "shader program: fragment compile error"},
		{"link", -1, glcore.ShaderSources{Vertex: gltest.VertexSource, Fragment: gltest.VaryingFragmentSource}, "shader program: program link error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := gltest.NewDriver()
			d.FailAllocation(tt.fail, true)

			s, err := glcore.NewScene(d, glcore.TriangleVertices, tt.src)
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			for _, kind := range []glcore.ObjectKind{glcore.ObjectBuffer, glcore.ObjectVertexArray, glcore.ObjectShader, glcore.ObjectProgram} {
				assert.Equal(t, 0, d.Live(kind), "%s leaked", kind)
			}
			assert.Empty(t, d.Violations())
		})
	}
}

func TestSceneReload(t *testing.T) {
	d := gltest.NewDriver()
	s, err := glcore.NewScene(d, glcore.TriangleVertices, triangleSources)
	require.NoError(t, err)
	old := s.Program().Handle()

	err = s.Reload(glcore.ShaderSources{Vertex: gltest.VertexSource, Fragment: gltest.BrokenSource})
	var ce *glcore.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, old, s.Program().Handle(), "failed reload replaced the program")
	assert.Equal(t, old, d.CurrentProgram())

	require.NoError(t, s.Reload(glcore.ShaderSources{
		Vertex:   gltest.VaryingVertexSource,
		Fragment: gltest.VaryingFragmentSource,
	}))
	assert.NotEqual(t, old, s.Program().Handle())
	assert.Equal(t, s.Program().Handle(), d.CurrentProgram())
	assert.False(t, d.IsAllocated(glcore.ObjectProgram, old), "old program not released")
	assert.Equal(t, 1, d.Live(glcore.ObjectProgram))
	assert.Empty(t, d.Violations())
}

func TestSceneDelete(t *testing.T) {
	d := gltest.NewDriver()
	s, err := glcore.NewScene(d, glcore.TriangleVertices, triangleSources)
	require.NoError(t, err)

	s.Delete()
	s.Delete()
	for _, kind := range []glcore.ObjectKind{glcore.ObjectBuffer, glcore.ObjectVertexArray, glcore.ObjectShader, glcore.ObjectProgram} {
		assert.Equal(t, 0, d.Live(kind), "%s leaked", kind)
	}
	assert.Zero(t, d.CurrentProgram())
	assert.Zero(t, d.BoundVertexArray())
	assert.Empty(t, d.Violations())
}
