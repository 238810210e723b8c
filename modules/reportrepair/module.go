// Package reportrepair solves 2020/01: find the entries of an expense report
// that sum to a target and multiply them.
package reportrepair

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:     "2020/01",
		Title:  "Report Repair",
		Params: []registry.ParamDef{registry.IntParam("target", 2020, "sum the entries must reach")},
		Part1:  withTarget(Part1),
		Part2:  withTarget(Part2),
	})
}

func withTarget(fn func(string, int) (int, error)) registry.SolveFunc {
	return func(_ context.Context, input string, p registry.Params) (int, error) {
		target, err := p.Int("target")
		if err != nil {
			return 0, err
		}
		return fn(input, target)
	}
}

func parse(input string) ([]int, error) {
	entries, err := textutil.Ints(input)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, textutil.Syntaxf("empty report")
	}
	return entries, nil
}

// Part1 returns the product of the two entries that sum to target.
func Part1(input string, target int) (int, error) {
	entries, err := parse(input)
	if err != nil {
		return 0, err
	}
	seen := make(map[int]bool, len(entries))
	for _, n := range entries {
		if seen[target-n] {
			return n * (target - n), nil
		}
		seen[n] = true
	}
	return 0, fmt.Errorf("%w: no two entries sum to %d", registry.ErrNoSolution, target)
}

// Part2 returns the product of the three entries that sum to target.
func Part2(input string, target int) (int, error) {
	entries, err := parse(input)
	if err != nil {
		return 0, err
	}
	sort.Ints(entries)
	for i := 0; i < len(entries)-2; i++ {
		lo, hi := i+1, len(entries)-1
		for lo < hi {
			sum := entries[i] + entries[lo] + entries[hi]
			switch {
			case sum == target:
				return entries[i] * entries[lo] * entries[hi], nil
			case sum < target:
				lo++
			default:
				hi--
			}
		}
	}
	return 0, fmt.Errorf("%w: no three entries sum to %d", registry.ErrNoSolution, target)
}
