package glcore

import (
	"unsafe"
)

// Buffer owns a single buffer object. It has no intrinsic size; the size is
// whatever the most recent upload wrote.
type Buffer struct {
	d      Driver
	handle uint32
	kind   BufferKind
}

// NewBuffer allocates an empty buffer object used with the given slot.
func NewBuffer(d Driver, kind BufferKind) (*Buffer, error) {
	h := d.GenBuffer()
	if h == 0 {
		return nil, &AllocationError{Object: ObjectBuffer}
	}
	Logger().Debug("buffer allocated", "handle", h, "kind", kind)
	return &Buffer{d: d, handle: h, kind: kind}, nil
}

// Handle returns the driver handle, or 0 once the buffer has been deleted.
func (b *Buffer) Handle() uint32 { return b.handle }

// Kind returns the binding slot the buffer is used with.
func (b *Buffer) Kind() BufferKind { return b.kind }

// Bind makes the buffer the active object of its slot.
func (b *Buffer) Bind() {
	if b.handle == 0 {
		Logger().Warn("buffer already deleted", "op", "bind", "kind", b.kind)
		return
	}
	b.d.BindBuffer(b.kind, b.handle)
}

// Upload binds the buffer and copies data into it.
func (b *Buffer) Upload(data []byte, usage Usage) {
	if b.handle == 0 {
		Logger().Warn("buffer already deleted", "op", "upload", "kind", b.kind)
		return
	}
	b.Bind()
	BufferData(b.d, b.kind, data, usage)
}

// Delete releases the buffer object. Calling Delete again is a no-op.
func (b *Buffer) Delete() {
	if b.handle == 0 {
		return
	}
	b.d.DeleteBuffer(b.handle)
	Logger().Debug("buffer deleted", "handle", b.handle, "kind", b.kind)
	b.handle = 0
}

// ClearBufferBinding leaves no buffer bound to the given slot.
func ClearBufferBinding(d Driver, kind BufferKind) {
	d.BindBuffer(kind, 0)
}

// BufferData copies data into the buffer currently bound to kind. The caller
// must have bound the right buffer first.
func BufferData(d Driver, kind BufferKind, data []byte, usage Usage) {
	d.BufferData(kind, data, usage)
	Logger().Debug("buffer data", "kind", kind, "bytes", len(data))
}

// Float32Bytes returns the host-order bytes backing v without copying.
func Float32Bytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

// VertexBytes returns the host-order bytes backing v without copying.
func VertexBytes(v []Vertex) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(Vertex{})))
}
