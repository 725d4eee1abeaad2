package glcore

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrAllocation is matched by every AllocationError.
	ErrAllocation = errors.New("driver returned a zero handle")

	// ErrMissingSource is matched by a SourceError whose file does not exist.
	ErrMissingSource = fs.ErrNotExist
)

// AllocationError reports that the driver could not allocate an object.
type AllocationError struct {
	Object ObjectKind
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocate %s: %v", e.Object, ErrAllocation)
}

func (e *AllocationError) Unwrap() error { return ErrAllocation }

// CompileError reports that a shader stage was rejected by the compiler.
// Log holds the full compiler diagnostic.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s compile error: %s", e.Stage, e.Log)
}

// LinkError reports that a program failed to link after both stages compiled.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "program link error: " + e.Log
}

// SourceError reports that a shader source file could not be read.
type SourceError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("read %s shader %q: %v", e.Stage, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
