package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vk/puzzlegrid/internal/registry"
)

// SimpleModule registers a single puzzle built from plain functions.
type SimpleModule struct {
	ID     string
	Title  string
	Params []registry.ParamDef
	Part1  registry.SolveFunc
	Part2  registry.SolveFunc
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	title := m.Title
	if title == "" {
		title = "Test puzzle " + m.ID
	}
	r.RegisterPuzzle(&registry.Puzzle{
		ID:     m.ID,
		Title:  title,
		Params: m.Params,
		Part1:  m.Part1,
		Part2:  m.Part2,
	})
}

// LineCount returns the number of non-empty lines of the input.
func LineCount(input string) (int, error) {
	return len(strings.Fields(input)), nil
}

// ExecutionRecord is the wall-clock window of one solver call.
type ExecutionRecord struct {
	Start time.Time
	End   time.Time
}

// SleeperModule registers puzzles whose solvers sleep and record when they ran.
// Records are keyed by "<id>#<part>".
type SleeperModule struct {
	IDs   []string
	Sleep time.Duration

	mu      sync.Mutex
	records map[string]ExecutionRecord
}

// Register registers one puzzle per id.
func (m *SleeperModule) Register(r *registry.Registry) {
	for _, id := range m.IDs {
		r.RegisterPuzzle(&registry.Puzzle{
			ID:    id,
			Title: "Sleeper " + id,
			Part1: m.solver(id + "#1"),
			Part2: m.solver(id + "#2"),
		})
	}
}

func (m *SleeperModule) solver(key string) registry.SolveFunc {
	return func(ctx context.Context, _ string, _ registry.Params) (int, error) {
		start := time.Now()
		select {
		case <-time.After(m.Sleep):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.records == nil {
			m.records = make(map[string]ExecutionRecord)
		}
		m.records[key] = ExecutionRecord{Start: start, End: time.Now()}
		return 1, nil
	}
}

// Records returns a copy of the recorded execution windows.
func (m *SleeperModule) Records() map[string]ExecutionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]ExecutionRecord, len(m.records))
	for k, v := range m.records {
		out[k] = v
	}
	return out
}
