package gltest

import (
	"slices"

	"github.com/go-theft-auto/glcore"
)

// FailAllocation makes every later allocation of kind return handle 0.
// Pass false to restore normal allocation.
func (d *Driver) FailAllocation(kind glcore.ObjectKind, fail bool) {
	d.failAlloc[kind] = fail
	delete(d.failAfter, kind)
}

// FailAllocationAfter lets the next n allocations of kind succeed and makes
// every one after that return handle 0. FailAllocation(kind, false)
// restores normal allocation.
func (d *Driver) FailAllocationAfter(kind glcore.ObjectKind, n int) {
	d.failAfter[kind] = n
}

// Calls returns every recorded call in order.
func (d *Driver) Calls() []Call { return slices.Clone(d.calls) }

// CallNames returns the names of every recorded call in order.
func (d *Driver) CallNames() []string {
	names := make([]string, len(d.calls))
	for i, c := range d.calls {
		names[i] = c.Name
	}
	return names
}

// ResetCalls forgets the recorded calls and violations.
func (d *Driver) ResetCalls() {
	d.calls = nil
	d.violations = nil
}

// Violations returns a description of each contract violation seen.
func (d *Driver) Violations() []string { return slices.Clone(d.violations) }

// Allocated returns how many objects of kind have ever been allocated.
func (d *Driver) Allocated(kind glcore.ObjectKind) int { return d.allocated[kind] }

// Live returns how many objects of kind are still allocated. Objects whose
// deletion the driver has deferred still count.
func (d *Driver) Live(kind glcore.ObjectKind) int {
	switch kind {
	case glcore.ObjectBuffer:
		return len(d.buffers)
	case glcore.ObjectVertexArray:
		return len(d.vertexArrays)
	case glcore.ObjectShader:
		return len(d.shaders)
	case glcore.ObjectProgram:
		return len(d.programs)
	default:
		return 0
	}
}

// IsAllocated reports whether handle h of kind is still allocated.
func (d *Driver) IsAllocated(kind glcore.ObjectKind, h uint32) bool {
	switch kind {
	case glcore.ObjectBuffer:
		return d.buffers[h] != nil
	case glcore.ObjectVertexArray:
		return d.vertexArrays[h] != nil
	case glcore.ObjectShader:
		return d.shaders[h] != nil
	case glcore.ObjectProgram:
		return d.programs[h] != nil
	default:
		return false
	}
}

// BufferContents returns a copy of the bytes last uploaded to buffer h and
// the usage hint they were uploaded with.
func (d *Driver) BufferContents(h uint32) ([]byte, glcore.Usage, bool) {
	b := d.buffers[h]
	if b == nil {
		return nil, 0, false
	}
	return slices.Clone(b.data), b.usage, true
}

// BoundBuffer returns the buffer bound to kind, or 0.
func (d *Driver) BoundBuffer(kind glcore.BufferKind) uint32 { return d.bound[kind] }

// BoundVertexArray returns the bound vertex array, or 0.
func (d *Driver) BoundVertexArray() uint32 { return d.boundVAO }

// CurrentProgram returns the active program, or 0.
func (d *Driver) CurrentProgram() uint32 { return d.currentProgram }

// IsLinked reports whether program h exists and linked successfully.
func (d *Driver) IsLinked(h uint32) bool {
	p := d.programs[h]
	return p != nil && p.linked
}

// IsDeletePending reports whether deletion of program h has been deferred
// because it is active.
func (d *Driver) IsDeletePending(h uint32) bool {
	p := d.programs[h]
	return p != nil && p.deletePending
}

// AttachedShaders returns the shaders attached to program h.
func (d *Driver) AttachedShaders(h uint32) []uint32 {
	p := d.programs[h]
	if p == nil {
		return nil
	}
	out := make([]uint32, 0, len(p.attached))
	for s := range p.attached {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Attribute returns the state of attribute index in vertex array vao.
func (d *Driver) Attribute(vao, index uint32) (Attribute, bool) {
	v := d.vertexArrays[vao]
	if v == nil {
		return Attribute{}, false
	}
	a := v.attribs[index]
	if a == nil {
		return Attribute{}, false
	}
	return *a, true
}

// ClearColorValue returns the last clear color set.
func (d *Driver) ClearColorValue() [4]float32 { return d.clearColor }

// Clears returns how many times Clear was called.
func (d *Driver) Clears() int { return d.clears }

// Draws returns every recorded draw call.
func (d *Driver) Draws() []Draw { return slices.Clone(d.draws) }

// LastLogLength returns the length reported by the most recent
// InfoLogLength query.
func (d *Driver) LastLogLength() int32 { return d.lastLogLength }
