// Package sonarsweep solves 2021/01: count how often sonar depth
// measurements increase.
package sonarsweep

import (
	"context"
	"fmt"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:     "2021/01",
		Title:  "Sonar Sweep",
		Params: []registry.ParamDef{registry.IntParam("window", 3, "width of the sliding window in part 2")},
		Part1:  registry.Simple(Part1),
		Part2: func(_ context.Context, input string, p registry.Params) (int, error) {
			window, err := p.Int("window")
			if err != nil {
				return 0, err
			}
			return Part2(input, window)
		},
	})
}

// CountIncreases counts the windowed sums that are larger than the previous
// one. Adjacent windows share all but one measurement, so comparing the
// measurements entering and leaving is enough.
func CountIncreases(depths []int, window int) (int, error) {
	if window < 1 {
		return 0, fmt.Errorf("window must be at least 1, got %d", window)
	}
	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n, nil
}

// Part1 counts measurements larger than the one before.
func Part1(input string) (int, error) {
	return Part2(input, 1)
}

// Part2 counts increases of the sliding window sums.
func Part2(input string, window int) (int, error) {
	depths, err := textutil.Ints(input)
	if err != nil {
		return 0, err
	}
	return CountIncreases(depths, window)
}
