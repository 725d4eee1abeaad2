// Package gltest provides an in-memory glcore.Driver for tests.
//
// The double models what the wrappers depend on: handle allocation per
// object kind, buffer memory, the global binding slots, deferred deletion of
// attached shaders and of the active program, and a small GLSL front end
// that accepts or rejects sources and checks stage interfaces at link time.
// Every call is recorded, and calls that break the API contract (uploading
// with nothing bound, touching handle 0, drawing without a program) are
// recorded as violations instead of panicking.
package gltest

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-theft-auto/glcore"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

// Attribute is the recorded state of one vertex attribute slot.
type Attribute struct {
	glcore.VertexAttribute
	Buffer  uint32 // array buffer bound when the layout was declared
	Enabled bool
}

// Draw is one recorded draw call.
type Draw struct {
	Mode        glcore.Primitive
	First       int32
	Count       int32
	Program     uint32
	VertexArray uint32
}

type bufferObject struct {
	data  []byte
	usage glcore.Usage
}

type vertexArrayObject struct {
	attribs map[uint32]*Attribute
}

type shaderObject struct {
	stage         glcore.Stage
	source        string
	compiled      bool
	log           string
	iface         stageInterface
	attachedTo    map[uint32]bool
	deletePending bool
}

type programObject struct {
	attached      map[uint32]bool
	linked        bool
	validated     bool
	log           string
	deletePending bool
}

// Driver is an in-memory glcore.Driver. The zero value is not usable; call
// NewDriver.
type Driver struct {
	calls      []Call
	violations []string

	// Shaders and programs share one name space, as in GL.
	nextBuffer, nextVertexArray, nextObject uint32

	buffers      map[uint32]*bufferObject
	vertexArrays map[uint32]*vertexArrayObject
	shaders      map[uint32]*shaderObject
	programs     map[uint32]*programObject

	allocated map[glcore.ObjectKind]int
	failAlloc map[glcore.ObjectKind]bool
	failAfter map[glcore.ObjectKind]int

	bound          map[glcore.BufferKind]uint32
	boundVAO       uint32
	currentProgram uint32

	clearColor    [4]float32
	clears        int
	draws         []Draw
	lastLogLength int32
}

var _ glcore.Driver = (*Driver)(nil)

// NewDriver returns an empty driver with nothing allocated or bound.
func NewDriver() *Driver {
	return &Driver{
		buffers:      make(map[uint32]*bufferObject),
		vertexArrays: make(map[uint32]*vertexArrayObject),
		shaders:      make(map[uint32]*shaderObject),
		programs:     make(map[uint32]*programObject),
		allocated:    make(map[glcore.ObjectKind]int),
		failAlloc:    make(map[glcore.ObjectKind]bool),
		failAfter:    make(map[glcore.ObjectKind]int),
		bound:        make(map[glcore.BufferKind]uint32),
	}
}

func (d *Driver) record(name string, args ...any) {
	d.calls = append(d.calls, Call{Name: name, Args: args})
}

// allocFails reports whether the next allocation of kind returns 0.
func (d *Driver) allocFails(kind glcore.ObjectKind) bool {
	if d.failAlloc[kind] {
		return true
	}
	n, ok := d.failAfter[kind]
	if !ok {
		return false
	}
	if n == 0 {
		return true
	}
	d.failAfter[kind] = n - 1
	return false
}

func (d *Driver) violate(format string, args ...any) {
	d.violations = append(d.violations, fmt.Sprintf(format, args...))
}

// Buffers

func (d *Driver) GenBuffer() uint32 {
	d.record("GenBuffer")
	if d.allocFails(glcore.ObjectBuffer) {
		return 0
	}
	d.nextBuffer++
	d.buffers[d.nextBuffer] = &bufferObject{}
	d.allocated[glcore.ObjectBuffer]++
	return d.nextBuffer
}

func (d *Driver) BindBuffer(target glcore.BufferKind, buffer uint32) {
	d.record("BindBuffer", target, buffer)
	if buffer != 0 && d.buffers[buffer] == nil {
		d.violate("BindBuffer(%s, %d): unknown buffer", target, buffer)
		return
	}
	d.bound[target] = buffer
}

func (d *Driver) BufferData(target glcore.BufferKind, data []byte, usage glcore.Usage) {
	d.record("BufferData", target, len(data), usage)
	h := d.bound[target]
	if h == 0 {
		d.violate("BufferData(%s): no buffer bound", target)
		return
	}
	b := d.buffers[h]
	b.data = slices.Clone(data)
	b.usage = usage
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	d.record("DeleteBuffer", buffer)
	if buffer == 0 {
		d.violate("DeleteBuffer(0)")
		return
	}
	if d.buffers[buffer] == nil {
		d.violate("DeleteBuffer(%d): unknown buffer", buffer)
		return
	}
	delete(d.buffers, buffer)
	for k, h := range d.bound {
		if h == buffer {
			d.bound[k] = 0
		}
	}
}

// Vertex arrays

func (d *Driver) GenVertexArray() uint32 {
	d.record("GenVertexArray")
	if d.allocFails(glcore.ObjectVertexArray) {
		return 0
	}
	d.nextVertexArray++
	d.vertexArrays[d.nextVertexArray] = &vertexArrayObject{attribs: make(map[uint32]*Attribute)}
	d.allocated[glcore.ObjectVertexArray]++
	return d.nextVertexArray
}

func (d *Driver) BindVertexArray(array uint32) {
	d.record("BindVertexArray", array)
	if array != 0 && d.vertexArrays[array] == nil {
		d.violate("BindVertexArray(%d): unknown vertex array", array)
		return
	}
	d.boundVAO = array
}

func (d *Driver) DeleteVertexArray(array uint32) {
	d.record("DeleteVertexArray", array)
	if array == 0 {
		d.violate("DeleteVertexArray(0)")
		return
	}
	if d.vertexArrays[array] == nil {
		d.violate("DeleteVertexArray(%d): unknown vertex array", array)
		return
	}
	delete(d.vertexArrays, array)
	if d.boundVAO == array {
		d.boundVAO = 0
	}
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype glcore.ComponentType, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	vao := d.vertexArrays[d.boundVAO]
	if vao == nil {
		d.violate("VertexAttribPointer(%d): no vertex array bound", index)
		return
	}
	buf := d.bound[glcore.ArrayBuffer]
	if buf == 0 {
		d.violate("VertexAttribPointer(%d): no array buffer bound", index)
		return
	}
	a := vao.attribs[index]
	if a == nil {
		a = &Attribute{}
		vao.attribs[index] = a
	}
	a.VertexAttribute = glcore.VertexAttribute{
		Index:      index,
		Components: size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
	a.Buffer = buf
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
	d.setAttribEnabled(index, true)
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	d.record("DisableVertexAttribArray", index)
	d.setAttribEnabled(index, false)
}

func (d *Driver) setAttribEnabled(index uint32, enabled bool) {
	vao := d.vertexArrays[d.boundVAO]
	if vao == nil {
		d.violate("attribute %d: no vertex array bound", index)
		return
	}
	a := vao.attribs[index]
	if a == nil {
		a = &Attribute{VertexAttribute: glcore.VertexAttribute{Index: index}}
		vao.attribs[index] = a
	}
	a.Enabled = enabled
}

// Shaders

func (d *Driver) CreateShader(stage glcore.Stage) uint32 {
	d.record("CreateShader", stage)
	if d.allocFails(glcore.ObjectShader) {
		return 0
	}
	if stage != glcore.VertexStage && stage != glcore.FragmentStage {
		d.violate("CreateShader(%#x): unsupported stage", uint32(stage))
		return 0
	}
	d.nextObject++
	d.shaders[d.nextObject] = &shaderObject{stage: stage, attachedTo: make(map[uint32]bool)}
	d.allocated[glcore.ObjectShader]++
	return d.nextObject
}

func (d *Driver) shader(op string, h uint32) *shaderObject {
	if h == 0 {
		d.violate("%s(0)", op)
		return nil
	}
	s := d.shaders[h]
	if s == nil || s.deletePending {
		d.violate("%s(%d): unknown shader", op, h)
		return nil
	}
	return s
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource", shader, len(source))
	if s := d.shader("ShaderSource", shader); s != nil {
		s.source = source
	}
}

func (d *Driver) CompileShader(shader uint32) {
	d.record("CompileShader", shader)
	s := d.shader("CompileShader", shader)
	if s == nil {
		return
	}
	s.iface, s.log = compile(s.stage, s.source)
	s.compiled = s.log == ""
}

func (d *Driver) GetShaderiv(shader uint32, pname glcore.Param) int32 {
	d.record("GetShaderiv", shader, pname)
	s := d.shader("GetShaderiv", shader)
	if s == nil {
		return 0
	}
	switch pname {
	case glcore.CompileStatus:
		return boolStatus(s.compiled)
	case glcore.InfoLogLength:
		d.lastLogLength = logLength(s.log)
		return d.lastLogLength
	default:
		d.violate("GetShaderiv(%d, %#x): unsupported parameter", shader, uint32(pname))
		return 0
	}
}

func (d *Driver) GetShaderInfoLog(shader uint32, bufSize int32) []byte {
	d.record("GetShaderInfoLog", shader, bufSize)
	s := d.shader("GetShaderInfoLog", shader)
	if s == nil {
		return nil
	}
	return truncate(s.log, bufSize)
}

func (d *Driver) DeleteShader(shader uint32) {
	d.record("DeleteShader", shader)
	s := d.shader("DeleteShader", shader)
	if s == nil {
		return
	}
	if len(s.attachedTo) > 0 {
		s.deletePending = true
		return
	}
	delete(d.shaders, shader)
}

// Programs

func (d *Driver) CreateProgram() uint32 {
	d.record("CreateProgram")
	if d.allocFails(glcore.ObjectProgram) {
		return 0
	}
	d.nextObject++
	d.programs[d.nextObject] = &programObject{attached: make(map[uint32]bool)}
	d.allocated[glcore.ObjectProgram]++
	return d.nextObject
}

func (d *Driver) program(op string, h uint32) *programObject {
	if h == 0 {
		d.violate("%s(0)", op)
		return nil
	}
	p := d.programs[h]
	if p == nil || p.deletePending {
		d.violate("%s(%d): unknown program", op, h)
		return nil
	}
	return p
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.record("AttachShader", program, shader)
	p := d.program("AttachShader", program)
	s := d.shader("AttachShader", shader)
	if p == nil || s == nil {
		return
	}
	if p.attached[shader] {
		d.violate("AttachShader(%d, %d): already attached", program, shader)
		return
	}
	p.attached[shader] = true
	s.attachedTo[program] = true
}

func (d *Driver) DetachShader(program, shader uint32) {
	d.record("DetachShader", program, shader)
	p := d.program("DetachShader", program)
	if p == nil {
		return
	}
	if !p.attached[shader] {
		d.violate("DetachShader(%d, %d): not attached", program, shader)
		return
	}
	d.detach(program, p, shader)
}

func (d *Driver) detach(program uint32, p *programObject, shader uint32) {
	delete(p.attached, shader)
	s := d.shaders[shader]
	if s == nil {
		return
	}
	delete(s.attachedTo, program)
	if s.deletePending && len(s.attachedTo) == 0 {
		delete(d.shaders, shader)
	}
}

func (d *Driver) LinkProgram(program uint32) {
	d.record("LinkProgram", program)
	p := d.program("LinkProgram", program)
	if p == nil {
		return
	}
	var stages []*shaderObject
	for h := range p.attached {
		stages = append(stages, d.shaders[h])
	}
	p.log = link(stages)
	p.linked = p.log == ""
	p.validated = false
}

func (d *Driver) ValidateProgram(program uint32) {
	d.record("ValidateProgram", program)
	p := d.program("ValidateProgram", program)
	if p == nil {
		return
	}
	p.validated = p.linked
	if !p.linked {
		p.log = "error: program is not successfully linked\n"
	}
}

func (d *Driver) GetProgramiv(program uint32, pname glcore.Param) int32 {
	d.record("GetProgramiv", program, pname)
	p := d.program("GetProgramiv", program)
	if p == nil {
		return 0
	}
	switch pname {
	case glcore.LinkStatus:
		return boolStatus(p.linked)
	case glcore.ValidateStatus:
		return boolStatus(p.validated)
	case glcore.InfoLogLength:
		d.lastLogLength = logLength(p.log)
		return d.lastLogLength
	default:
		d.violate("GetProgramiv(%d, %#x): unsupported parameter", program, uint32(pname))
		return 0
	}
}

func (d *Driver) GetProgramInfoLog(program uint32, bufSize int32) []byte {
	d.record("GetProgramInfoLog", program, bufSize)
	p := d.program("GetProgramInfoLog", program)
	if p == nil {
		return nil
	}
	return truncate(p.log, bufSize)
}

func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram", program)
	if program != 0 {
		p := d.program("UseProgram", program)
		if p == nil {
			return
		}
		if !p.linked {
			d.violate("UseProgram(%d): program not linked", program)
			return
		}
	}
	prev := d.currentProgram
	d.currentProgram = program
	if prev != 0 && prev != program {
		if p := d.programs[prev]; p != nil && p.deletePending {
			d.freeProgram(prev, p)
		}
	}
}

func (d *Driver) DeleteProgram(program uint32) {
	d.record("DeleteProgram", program)
	p := d.program("DeleteProgram", program)
	if p == nil {
		return
	}
	if d.currentProgram == program {
		p.deletePending = true
		return
	}
	d.freeProgram(program, p)
}

func (d *Driver) freeProgram(program uint32, p *programObject) {
	for shader := range p.attached {
		d.detach(program, p, shader)
	}
	delete(d.programs, program)
}

// Drawing

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
	d.clearColor = [4]float32{r, g, b, a}
}

func (d *Driver) Clear(mask glcore.ClearMask) {
	d.record("Clear", mask)
	d.clears++
}

func (d *Driver) DrawArrays(mode glcore.Primitive, first, count int32) {
	d.record("DrawArrays", mode, first, count)
	if d.currentProgram == 0 {
		d.violate("DrawArrays: no program active")
	}
	vao := d.vertexArrays[d.boundVAO]
	if vao == nil {
		d.violate("DrawArrays: no vertex array bound")
	} else if !slices.ContainsFunc(slices.Collect(maps.Values(vao.attribs)), func(a *Attribute) bool { return a.Enabled }) {
		d.violate("DrawArrays: no attribute enabled")
	}
	d.draws = append(d.draws, Draw{
		Mode:        mode,
		First:       first,
		Count:       count,
		Program:     d.currentProgram,
		VertexArray: d.boundVAO,
	})
}

func boolStatus(ok bool) int32 {
	if ok {
		return glcore.True
	}
	return 0
}

// logLength is the reported log length, which counts the NUL terminator.
// An empty log reports 0.
func logLength(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log)) + 1
}

// truncate fills a buffer of bufSize bytes the way GL does: at most
// bufSize-1 characters followed by a NUL.
func truncate(log string, bufSize int32) []byte {
	if bufSize <= 0 {
		return nil
	}
	b := []byte(log)
	if int32(len(b)) > bufSize-1 {
		b = b[:bufSize-1]
	}
	return append(b, 0)
}
