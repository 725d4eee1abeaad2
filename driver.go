package glcore

// Driver is the narrow view of the native graphics API used by this package.
// Each method maps onto a single OpenGL entry point. Implementations are not
// safe for concurrent use: every call must come from the goroutine that owns
// the rendering context.
//
// The real implementation lives in backend/opengl; gltest provides an
// in-memory double.
type Driver interface {
	GenBuffer() uint32
	BindBuffer(target BufferKind, buffer uint32)
	BufferData(target BufferKind, data []byte, usage Usage)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	VertexAttribPointer(index uint32, size int32, xtype ComponentType, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname Param) int32
	// GetShaderInfoLog fills a buffer of bufSize bytes and returns the
	// filled part. It may end with the NUL terminator. The InfoLogLength
	// parameter counts that terminator.
	GetShaderInfoLog(shader uint32, bufSize int32) []byte
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program uint32, pname Param) int32
	GetProgramInfoLog(program uint32, bufSize int32) []byte
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	DrawArrays(mode Primitive, first, count int32)
}

// Stage is a shader pipeline stage. Values match the GL enums.
type Stage uint32

const (
	FragmentStage Stage = 0x8B30
	VertexStage   Stage = 0x8B31
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferKind selects a buffer binding slot.
type BufferKind uint32

const (
	// ArrayBuffer holds vertex data for drawing.
	ArrayBuffer BufferKind = 0x8892
	// ElementArrayBuffer holds indices of the vertices to draw.
	ElementArrayBuffer BufferKind = 0x8893
)

func (k BufferKind) String() string {
	switch k {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element-array"
	default:
		return "unknown"
	}
}

// Usage is the performance hint passed through with a buffer upload.
type Usage uint32

const (
	StreamDraw  Usage = 0x88E0
	StaticDraw  Usage = 0x88E4
	DynamicDraw Usage = 0x88E8
)

// ComponentType is the scalar type of a vertex attribute component.
type ComponentType uint32

const (
	Byte          ComponentType = 0x1400
	UnsignedByte  ComponentType = 0x1401
	Short         ComponentType = 0x1402
	UnsignedShort ComponentType = 0x1403
	Int           ComponentType = 0x1404
	UnsignedInt   ComponentType = 0x1405
	Float         ComponentType = 0x1406
)

// Size returns the size of one component in bytes, or 0 for an unknown type.
func (t ComponentType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	default:
		return 0
	}
}

// Param names an object parameter queried through GetShaderiv/GetProgramiv.
type Param uint32

const (
	CompileStatus  Param = 0x8B81
	LinkStatus     Param = 0x8B82
	ValidateStatus Param = 0x8B83
	InfoLogLength  Param = 0x8B84
)

// True is the value a status query reports on success. Anything else is a
// failure.
const True int32 = 1

// ClearMask selects the buffers cleared by Clear.
type ClearMask uint32

const (
	DepthBufferBit   ClearMask = 0x0100
	StencilBufferBit ClearMask = 0x0400
	ColorBufferBit   ClearMask = 0x4000
)

// Primitive is the primitive assembly mode for a draw call.
type Primitive uint32

const (
	Points        Primitive = 0x0000
	Lines         Primitive = 0x0001
	Triangles     Primitive = 0x0004
	TriangleStrip Primitive = 0x0005
)

// ObjectKind identifies the type of a driver-owned object.
type ObjectKind int

const (
	ObjectBuffer ObjectKind = iota
	ObjectVertexArray
	ObjectShader
	ObjectProgram
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectBuffer:
		return "buffer"
	case ObjectVertexArray:
		return "vertex array"
	case ObjectShader:
		return "shader"
	case ObjectProgram:
		return "program"
	default:
		return "object"
	}
}
