package glcore

// VertexArray owns a vertex-array state object. While bound, attribute
// declarations and buffer bindings are recorded against it.
type VertexArray struct {
	d      Driver
	handle uint32
}

// NewVertexArray allocates an empty vertex array.
func NewVertexArray(d Driver) (*VertexArray, error) {
	h := d.GenVertexArray()
	if h == 0 {
		return nil, &AllocationError{Object: ObjectVertexArray}
	}
	Logger().Debug("vertex array allocated", "handle", h)
	return &VertexArray{d: d, handle: h}, nil
}

// Handle returns the driver handle, or 0 once the array has been deleted.
func (a *VertexArray) Handle() uint32 { return a.handle }

// Bind makes the vertex array active.
func (a *VertexArray) Bind() {
	if a.handle == 0 {
		Logger().Warn("vertex array already deleted", "op", "bind")
		return
	}
	a.d.BindVertexArray(a.handle)
}

// Delete releases the vertex array. Calling Delete again is a no-op.
func (a *VertexArray) Delete() {
	if a.handle == 0 {
		return
	}
	a.d.DeleteVertexArray(a.handle)
	Logger().Debug("vertex array deleted", "handle", a.handle)
	a.handle = 0
}

// ClearVertexArrayBinding leaves no vertex array bound.
func ClearVertexArrayBinding(d Driver) {
	d.BindVertexArray(0)
}
