// Package opengl implements glcore.Driver on OpenGL 4.1 core and provides a
// GLFW window to draw into.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glcore"
)

// Driver forwards glcore.Driver calls to the current OpenGL context.
// gl.Init (or OpenWindow) must have run on the calling thread.
type Driver struct{}

var _ glcore.Driver = Driver{}

func (Driver) GenBuffer() uint32 {
	var h uint32
	gl.GenBuffers(1, &h)
	return h
}

func (Driver) BindBuffer(target glcore.BufferKind, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (Driver) BufferData(target glcore.BufferKind, data []byte, usage glcore.Usage) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), len(data), ptr, uint32(usage))
}

func (Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Driver) GenVertexArray() uint32 {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return h
}

func (Driver) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (Driver) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (Driver) VertexAttribPointer(index uint32, size int32, xtype glcore.ComponentType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, offset)
}

func (Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Driver) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (Driver) CreateShader(stage glcore.Stage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (Driver) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Driver) GetShaderiv(shader uint32, pname glcore.Param) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (Driver) GetShaderInfoLog(shader uint32, bufSize int32) []byte {
	if bufSize <= 0 {
		return nil
	}
	buf := make([]byte, bufSize)
	var written int32
	gl.GetShaderInfoLog(shader, bufSize, &written, &buf[0])
	return buf[:written]
}

func (Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (Driver) GetProgramiv(program uint32, pname glcore.Param) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (Driver) GetProgramInfoLog(program uint32, bufSize int32) []byte {
	if bufSize <= 0 {
		return nil
	}
	buf := make([]byte, bufSize)
	var written int32
	gl.GetProgramInfoLog(program, bufSize, &written, &buf[0])
	return buf[:written]
}

func (Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Driver) Clear(mask glcore.ClearMask) {
	gl.Clear(uint32(mask))
}

func (Driver) DrawArrays(mode glcore.Primitive, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// ShadingLanguageVersion returns the GL_SHADING_LANGUAGE_VERSION string.
func ShadingLanguageVersion() string {
	return gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}
