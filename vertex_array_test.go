package glcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glcore"
	"github.com/go-theft-auto/glcore/gltest"
)

func TestVertexArrayBind(t *testing.T) {
	d := gltest.NewDriver()
	a, err := glcore.NewVertexArray(d)
	require.NoError(t, err)
	b, err := glcore.NewVertexArray(d)
	require.NoError(t, err)
	assert.NotEqual(t, a.Handle(), b.Handle())

	a.Bind()
	assert.Equal(t, a.Handle(), d.BoundVertexArray())
	b.Bind()
	assert.Equal(t, b.Handle(), d.BoundVertexArray())
	glcore.ClearVertexArrayBinding(d)
	assert.Zero(t, d.BoundVertexArray())

	a.Delete()
	a.Delete()
	a.Bind()
	assert.Zero(t, d.BoundVertexArray())
	assert.Equal(t, 1, d.Live(glcore.ObjectVertexArray))
	assert.Empty(t, d.Violations())
}

func TestNewVertexArrayAllocationFailure(t *testing.T) {
	d := gltest.NewDriver()
	d.FailAllocation(glcore.ObjectVertexArray, true)
	a, err := glcore.NewVertexArray(d)
	assert.Nil(t, a)
	var allocErr *glcore.AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, glcore.ObjectVertexArray, allocErr.Object)
}

func TestDeclareAttribute(t *testing.T) {
	d := gltest.NewDriver()
	vao, err := glcore.NewVertexArray(d)
	require.NoError(t, err)
	vbo, err := glcore.NewBuffer(d, glcore.ArrayBuffer)
	require.NoError(t, err)

	vao.Bind()
	vbo.Bind()
	glcore.DeclareAttribute(d, glcore.PositionAttribute)
	glcore.EnableAttribute(d, 0)

	a, ok := d.Attribute(vao.Handle(), 0)
	require.True(t, ok)
	assert.True(t, a.Enabled)
	assert.Equal(t, vbo.Handle(), a.Buffer)
	assert.Equal(t, glcore.PositionAttribute, a.VertexAttribute)

	glcore.DisableAttribute(d, 0)
	a, _ = d.Attribute(vao.Handle(), 0)
	assert.False(t, a.Enabled)
	assert.Empty(t, d.Violations())
}

func TestDeclareAttributeRecordsAgainstBoundArray(t *testing.T) {
	d := gltest.NewDriver()
	first, err := glcore.NewVertexArray(d)
	require.NoError(t, err)
	second, err := glcore.NewVertexArray(d)
	require.NoError(t, err)
	vbo, err := glcore.NewBuffer(d, glcore.ArrayBuffer)
	require.NoError(t, err)

	first.Bind()
	second.Bind()
	vbo.Bind()
	glcore.DeclareAttribute(d, glcore.PositionAttribute)

	_, ok := d.Attribute(first.Handle(), 0)
	assert.False(t, ok)
	_, ok = d.Attribute(second.Handle(), 0)
	assert.True(t, ok)
}

func TestDeclareAttributeWithoutBinds(t *testing.T) {
	d := gltest.NewDriver()
	glcore.DeclareAttribute(d, glcore.PositionAttribute)
	glcore.EnableAttribute(d, 0)
	assert.Len(t, d.Violations(), 2)
}

func TestVertexAttributeValidate(t *testing.T) {
	tests := []struct {
		name    string
		attr    glcore.VertexAttribute
		wantErr bool
	}{
		{"position", glcore.PositionAttribute, false},
		{"packed color", glcore.VertexAttribute{Index: 2, Components: 4, Type: glcore.UnsignedByte, Normalized: true}, false},
		{"zero components", glcore.VertexAttribute{Components: 0, Type: glcore.Float}, true},
		{"five components", glcore.VertexAttribute{Components: 5, Type: glcore.Float}, true},
		{"unknown type", glcore.VertexAttribute{Components: 3, Type: 0x1234}, true},
		{"negative stride", glcore.VertexAttribute{Components: 3, Type: glcore.Float, Stride: -4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attr.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
