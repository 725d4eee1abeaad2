package glcore

import (
	"fmt"
	"unsafe"
)

// VertexAttribute describes how the bound array buffer's bytes map onto one
// attribute slot of the bound vertex array.
type VertexAttribute struct {
	Index      uint32
	Components int32 // 1..4
	Type       ComponentType
	Normalized bool
	Stride     int32   // bytes between consecutive vertices, 0 = tightly packed
	Offset     uintptr // byte offset of the first component
}

// PositionAttribute is a three-float position at index 0.
var PositionAttribute = VertexAttribute{
	Index:      0,
	Components: 3,
	Type:       Float,
	Stride:     int32(unsafe.Sizeof(Vertex{})),
}

// Validate reports whether the layout can be passed to the driver.
func (a VertexAttribute) Validate() error {
	if a.Components < 1 || a.Components > 4 {
		return fmt.Errorf("attribute %d: component count %d out of range 1..4", a.Index, a.Components)
	}
	if a.Type.Size() == 0 {
		return fmt.Errorf("attribute %d: unknown component type %#x", a.Index, uint32(a.Type))
	}
	if a.Stride < 0 {
		return fmt.Errorf("attribute %d: negative stride %d", a.Index, a.Stride)
	}
	return nil
}

// DeclareAttribute records the layout against the bound vertex array and
// array buffer. Both must be bound before the call.
func DeclareAttribute(d Driver, a VertexAttribute) {
	d.VertexAttribPointer(a.Index, a.Components, a.Type, a.Normalized, a.Stride, a.Offset)
}

// EnableAttribute enables the attribute slot for drawing.
func EnableAttribute(d Driver, index uint32) {
	d.EnableVertexAttribArray(index)
}

// DisableAttribute disables the attribute slot.
func DisableAttribute(d Driver, index uint32) {
	d.DisableVertexAttribArray(index)
}
