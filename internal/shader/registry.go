package shader

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/philipparndt/gooutline/internal/outline"
)

type sources struct {
	vertex   string
	fragment string
}

// Registry stores shader sources per outline style and compiles them on first use
type Registry struct {
	backend  Backend
	logger   *slog.Logger
	sources  map[outline.Style]sources
	programs map[outline.Style]Program
	// replaced programs that may still back live materials
	retired  []Program
	compiles int
}

// NewRegistry creates an empty registry compiling through backend
func NewRegistry(backend Backend, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		backend:  backend,
		logger:   logger,
		sources:  make(map[outline.Style]sources),
		programs: make(map[outline.Style]Program),
	}
}

// Register stores sources for style, replacing earlier ones and dropping the cached program.
// A replaced program is released as soon as it reports no live materials through
// MaterialCounter. Programs without a counter are kept until Close.
func (r *Registry) Register(style outline.Style, vertex, fragment string) {
	r.sources[style] = sources{vertex: vertex, fragment: fragment}
	if p, ok := r.programs[style]; ok {
		delete(r.programs, style)
		r.retired = append(r.retired, p)
		r.logger.Debug("shader program invalidated", "program", style.ProgramName())
	}
	r.sweep()
}

// sweep releases retired programs whose materials are all gone
func (r *Registry) sweep() {
	r.retired = slices.DeleteFunc(r.retired, func(p Program) bool {
		c, ok := p.(MaterialCounter)
		if !ok || c.LiveMaterials() > 0 {
			return false
		}
		p.Release()
		r.logger.Debug("retired shader program released", "program", p.Name())
		return true
	})
}

// Retired returns how many replaced programs are still held
func (r *Registry) Retired() int {
	return len(r.retired)
}

// RegisterDefaults registers the built-in sources for every outline style
func (r *Registry) RegisterDefaults() {
	for _, s := range outline.Styles {
		vs, fs := outline.Sources(s)
		r.Register(s, vs, fs)
	}
}

// Source returns the registered sources for style
func (r *Registry) Source(style outline.Style) (vertex, fragment string, ok bool) {
	src, ok := r.sources[style]
	return src.vertex, src.fragment, ok
}

// Registered returns the styles with sources, in declaration order
func (r *Registry) Registered() []outline.Style {
	out := make([]outline.Style, 0, len(r.sources))
	for s := range r.sources {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Instantiate returns the compiled program for style, compiling it on first use
func (r *Registry) Instantiate(style outline.Style, attributes, uniforms []string) (Program, error) {
	r.sweep()
	if p, ok := r.programs[style]; ok {
		return p, nil
	}
	src, ok := r.sources[style]
	if !ok {
		return nil, fmt.Errorf("%s: %w", style.ProgramName(), ErrNotRegistered)
	}

	name := style.ProgramName()
	p, err := r.backend.Compile(name, src.vertex, src.fragment, attributes, uniforms)
	if err != nil {
		var cerr *CompilationError
		if !errors.As(err, &cerr) {
			cerr = &CompilationError{Program: name, Err: err}
		}
		r.logger.Error("shader compilation failed", "program", name, "error", cerr)
		return nil, cerr
	}

	r.programs[style] = p
	r.compiles++
	r.logger.Debug("shader program compiled", "program", name, "uniforms", uniforms)
	return p, nil
}

// Compiles returns how many programs have been compiled successfully
func (r *Registry) Compiles() int {
	return r.compiles
}

// Close releases every program the registry compiled
func (r *Registry) Close() {
	for s, p := range r.programs {
		p.Release()
		delete(r.programs, s)
	}
	for _, p := range r.retired {
		p.Release()
	}
	r.retired = nil
}
