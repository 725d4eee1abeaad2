package glcore

import (
	"errors"
	"fmt"
)

// ShaderProgram owns a program object built from one vertex and one
// fragment shader.
type ShaderProgram struct {
	d        Driver
	handle   uint32
	attached map[Stage]uint32
}

// NewShaderProgram allocates an empty program object.
//
// Prefer ProgramFromVertFrag, which builds a complete program from vertex
// and fragment sources in one step.
func NewShaderProgram(d Driver) (*ShaderProgram, error) {
	h := d.CreateProgram()
	if h == 0 {
		return nil, &AllocationError{Object: ObjectProgram}
	}
	Logger().Debug("program allocated", "handle", h)
	return &ShaderProgram{d: d, handle: h, attached: make(map[Stage]uint32, 2)}, nil
}

// ProgramFromVertFrag compiles the two sources, links them and returns the
// program. The intermediate shaders are always released. On failure every
// object allocated along the way is released and the error says which step
// failed: allocation, vertex compile, fragment compile or link.
func ProgramFromVertFrag(d Driver, vert, frag string) (*ShaderProgram, error) {
	p, err := NewShaderProgram(d)
	if err != nil {
		return nil, err
	}

	v, err := ShaderFromSource(d, VertexStage, vert)
	if err != nil {
		p.Delete()
		return nil, stageError(VertexStage, err)
	}
	f, err := ShaderFromSource(d, FragmentStage, frag)
	if err != nil {
		v.Delete()
		p.Delete()
		return nil, stageError(FragmentStage, err)
	}

	for _, s := range []*Shader{v, f} {
		if err := p.AttachShader(s); err != nil {
			v.Delete()
			f.Delete()
			p.Delete()
			return nil, err
		}
	}
	p.Link()
	p.DetachShader(v)
	p.DetachShader(f)
	v.Delete()
	f.Delete()

	if p.LinkSuccess() {
		return p, nil
	}
	out := p.InfoLog()
	p.Delete()
	return nil, &LinkError{Log: out}
}

// Handle returns the driver handle, or 0 once the program has been deleted.
func (p *ShaderProgram) Handle() uint32 { return p.handle }

// AttachShader attaches a compiled shader. A program takes at most one
// shader per stage.
func (p *ShaderProgram) AttachShader(s *Shader) error {
	if p.handle == 0 {
		return fmt.Errorf("attach %s shader: program already deleted", s.stage)
	}
	if s.handle == 0 {
		return fmt.Errorf("attach %s shader: shader already deleted", s.stage)
	}
	if cur, ok := p.attached[s.stage]; ok {
		return fmt.Errorf("attach %s shader: stage already has shader %d", s.stage, cur)
	}
	p.d.AttachShader(p.handle, s.handle)
	p.attached[s.stage] = s.handle
	return nil
}

// DetachShader detaches a previously attached shader.
func (p *ShaderProgram) DetachShader(s *Shader) {
	if p.handle == 0 || s.handle == 0 {
		return
	}
	if p.attached[s.stage] != s.handle {
		return
	}
	p.d.DetachShader(p.handle, s.handle)
	delete(p.attached, s.stage)
}

// Link links the attached shaders and reports whether it succeeded.
func (p *ShaderProgram) Link() bool {
	if !p.live("link") {
		return false
	}
	p.d.LinkProgram(p.handle)
	return p.LinkSuccess()
}

// LinkSuccess reports whether the last link succeeded.
func (p *ShaderProgram) LinkSuccess() bool {
	if p.handle == 0 {
		return false
	}
	return p.d.GetProgramiv(p.handle, LinkStatus) == True
}

// Validate checks whether the program can run in the current state and
// reports the result. Details are in InfoLog.
func (p *ShaderProgram) Validate() bool {
	if !p.live("validate") {
		return false
	}
	p.d.ValidateProgram(p.handle)
	return p.d.GetProgramiv(p.handle, ValidateStatus) == True
}

// InfoLog returns the program log, usually read after a failed link.
func (p *ShaderProgram) InfoLog() string {
	if p.handle == 0 {
		return ""
	}
	return readDiagnosticLog(p.handle, p.d.GetProgramiv, p.d.GetProgramInfoLog)
}

// Activate makes this the program used by subsequent draw calls.
func (p *ShaderProgram) Activate() {
	if !p.live("activate") {
		return
	}
	p.d.UseProgram(p.handle)
	Logger().Debug("program activated", "handle", p.handle)
}

// Delete marks the program for deletion. The driver keeps an active program
// alive until another one is activated.
func (p *ShaderProgram) Delete() {
	if p.handle == 0 {
		return
	}
	p.d.DeleteProgram(p.handle)
	Logger().Debug("program deleted", "handle", p.handle)
	p.handle = 0
	clear(p.attached)
}

// stageError names the stage of a failed shader step. A CompileError
// already carries it.
func stageError(stage Stage, err error) error {
	var ce *CompileError
	if errors.As(err, &ce) {
		return err
	}
	return fmt.Errorf("%s shader: %w", stage, err)
}

// ClearActiveProgram leaves no program active.
func ClearActiveProgram(d Driver) {
	d.UseProgram(0)
}

func (p *ShaderProgram) live(op string) bool {
	if p.handle != 0 {
		return true
	}
	Logger().Warn("program already deleted", "op", op)
	return false
}
