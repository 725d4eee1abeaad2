package glcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glcore"
	"github.com/go-theft-auto/glcore/gltest"
)

func TestNewBuffer(t *testing.T) {
	d := gltest.NewDriver()
	b, err := glcore.NewBuffer(d, glcore.ElementArrayBuffer)
	require.NoError(t, err)
	assert.NotZero(t, b.Handle())
	assert.Equal(t, glcore.ElementArrayBuffer, b.Kind())

	d.FailAllocation(glcore.ObjectBuffer, true)
	b, err = glcore.NewBuffer(d, glcore.ArrayBuffer)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, glcore.ErrAllocation)
	assert.EqualError(t, err, "allocate buffer: driver returned a zero handle")
}

func TestBufferDataRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0xff}},
		{"triangle", glcore.VertexBytes(glcore.TriangleVertices)},
		{"odd length", []byte{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := gltest.NewDriver()
			b, err := glcore.NewBuffer(d, glcore.ArrayBuffer)
			require.NoError(t, err)

			b.Bind()
			glcore.BufferData(d, glcore.ArrayBuffer, tt.data, glcore.DynamicDraw)

			got, usage, ok := d.BufferContents(b.Handle())
			require.True(t, ok)
			assert.Len(t, got, len(tt.data))
			if len(tt.data) > 0 {
				assert.Equal(t, tt.data, got)
			}
			assert.Equal(t, glcore.DynamicDraw, usage)
			assert.Empty(t, d.Violations())
		})
	}
}

func TestBufferDataWithoutBind(t *testing.T) {
	d := gltest.NewDriver()
	b, err := glcore.NewBuffer(d, glcore.ArrayBuffer)
	require.NoError(t, err)

	glcore.BufferData(d, glcore.ArrayBuffer, []byte{1, 2, 3, 4}, glcore.StaticDraw)
	require.Len(t, d.Violations(), 1)
	assert.Contains(t, d.Violations()[0], "no buffer bound")

	got, _, _ := d.BufferContents(b.Handle())
	assert.Empty(t, got)
}

func TestBufferUploadBindsFirst(t *testing.T) {
	d := gltest.NewDriver()
	b, err := glcore.NewBuffer(d, glcore.ArrayBuffer)
	require.NoError(t, err)

	data := glcore.Float32Bytes([]float32{1, 2, 3})
	b.Upload(data, glcore.StaticDraw)

	names := d.CallNames()
	require.GreaterOrEqual(t, len(names), 2)
	assert.Equal(t, []string{"BindBuffer", "BufferData"}, names[len(names)-2:])
	got, _, _ := d.BufferContents(b.Handle())
	assert.Equal(t, data, got)
	assert.Empty(t, d.Violations())
}

func TestUploadGoesToMostRecentBind(t *testing.T) {
	d := gltest.NewDriver()
	a, err := glcore.NewBuffer(d, glcore.ArrayBuffer)
	require.NoError(t, err)
	b, err := glcore.NewBuffer(d, glcore.ArrayBuffer)
	require.NoError(t, err)

	a.Bind()
	b.Bind()
	glcore.BufferData(d, glcore.ArrayBuffer, []byte{9}, glcore.StaticDraw)

	got, _, _ := d.BufferContents(a.Handle())
	assert.Empty(t, got)
	got, _, _ = d.BufferContents(b.Handle())
	assert.Equal(t, []byte{9}, got)
}

func TestClearBufferBinding(t *testing.T) {
	d := gltest.NewDriver()
	b, err := glcore.NewBuffer(d, glcore.ElementArrayBuffer)
	require.NoError(t, err)
	b.Bind()
	assert.Equal(t, b.Handle(), d.BoundBuffer(glcore.ElementArrayBuffer))
	assert.Zero(t, d.BoundBuffer(glcore.ArrayBuffer))

	glcore.ClearBufferBinding(d, glcore.ElementArrayBuffer)
	assert.Zero(t, d.BoundBuffer(glcore.ElementArrayBuffer))
}

func TestBufferDelete(t *testing.T) {
	d := gltest.NewDriver()
	b, err := glcore.NewBuffer(d, glcore.ArrayBuffer)
	require.NoError(t, err)
	b.Delete()
	b.Delete()
	b.Bind()
	b.Upload([]byte{1}, glcore.StaticDraw)

	assert.Zero(t, b.Handle())
	assert.Equal(t, 0, d.Live(glcore.ObjectBuffer))
	assert.Equal(t, []string{"GenBuffer", "DeleteBuffer"}, d.CallNames())
	assert.Empty(t, d.Violations())
}

func TestFloat32Bytes(t *testing.T) {
	assert.Nil(t, glcore.Float32Bytes(nil))
	assert.Len(t, glcore.Float32Bytes([]float32{1, 2}), 8)
	assert.Len(t, glcore.VertexBytes(glcore.TriangleVertices), 36)
}
