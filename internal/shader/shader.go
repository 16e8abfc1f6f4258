// Package shader compiles and caches the outline shader programs.
package shader

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/pkg/geometry"
)

var (
	// ErrCompilation matches every *CompilationError
	ErrCompilation = errors.New("shader compilation failed")
	// ErrNotRegistered is returned for a style without registered sources
	ErrNotRegistered = errors.New("shader program not registered")
)

// Backend turns GLSL sources into programs
type Backend interface {
	Compile(name, vertex, fragment string, attributes, uniforms []string) (Program, error)
}

// Program is a compiled shader program. Release frees the GPU resources.
type Program interface {
	Name() string
	NewMaterial() (Material, error)
	Release()
}

// MaterialCounter is implemented by programs that know how many of their
// materials are still unreleased. The registry frees a replaced program once
// that count reaches zero.
type MaterialCounter interface {
	LiveMaterials() int
}

// Material is a program instance with its own uniform values
type Material interface {
	SetFloat(name string, v float64)
	SetVector3(name string, v geometry.Vector3)
	SetColor3(name string, c colorful.Color)
	Release()
}

// CompilationError reports a program the backend rejected
type CompilationError struct {
	Program string
	Log     string
	Err     error
}

func (e *CompilationError) Error() string {
	msg := fmt.Sprintf("compile shader program %q", e.Program)
	if e.Log != "" {
		msg += ": " + e.Log
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrCompilation) hold
func (e *CompilationError) Is(target error) bool {
	return target == ErrCompilation
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}
