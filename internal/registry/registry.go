package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/puzzlegrid/internal/config"
)

// ErrNoSolution is wrapped by solvers whose input is well formed but admits
// no answer, such as a report with no pair summing to the target.
var ErrNoSolution = errors.New("no solution")

// SolveFunc computes one part of a puzzle from its raw input.
type SolveFunc func(ctx context.Context, input string, params Params) (int, error)

// Module is the interface that all puzzle modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Puzzle holds the compiled solvers of one daily puzzle.
type Puzzle struct {
	ID     string
	Title  string
	Params []ParamDef
	Part1  SolveFunc
	Part2  SolveFunc
}

// Part returns the solver for part 1 or 2, or nil.
func (p *Puzzle) Part(n int) SolveFunc {
	switch n {
	case 1:
		return p.Part1
	case 2:
		return p.Part2
	}
	return nil
}

// Registry holds all the registered puzzles for a single application instance.
type Registry struct {
	puzzles map[string]*Puzzle
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		puzzles: make(map[string]*Puzzle),
	}
}

// RegisterPuzzle registers the solvers of a puzzle. Registering an invalid or
// duplicate id is a programmer error and panics.
func (r *Registry) RegisterPuzzle(p *Puzzle) {
	if _, _, err := config.ParseID(p.ID); err != nil {
		panic(fmt.Sprintf("registering puzzle: %v", err))
	}
	if _, exists := r.puzzles[p.ID]; exists {
		panic(fmt.Sprintf("puzzle '%s' already registered", p.ID))
	}
	if p.Part1 == nil || p.Part2 == nil {
		panic(fmt.Sprintf("puzzle '%s' must register both parts", p.ID))
	}
	slog.Debug("Registering puzzle.", "id", p.ID, "title", p.Title)
	r.puzzles[p.ID] = p
}

// Lookup returns the puzzle registered under id.
func (r *Registry) Lookup(id string) (*Puzzle, bool) {
	p, ok := r.puzzles[id]
	return p, ok
}

// Puzzles returns every registered puzzle ordered by id.
func (r *Registry) Puzzles() []*Puzzle {
	out := make([]*Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered puzzles.
func (r *Registry) Len() int {
	return len(r.puzzles)
}

// Simple adapts a parameterless solver to a SolveFunc.
func Simple(fn func(input string) (int, error)) SolveFunc {
	return func(_ context.Context, input string, _ Params) (int, error) {
		return fn(input)
	}
}
