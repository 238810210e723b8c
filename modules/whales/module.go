// Package whales solves 2021/07: align crab submarines on one horizontal
// position using the least fuel.
package whales

import (
	"slices"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2021/07",
		Title: "The Treachery of Whales",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

func parse(input string) ([]int, error) {
	crabs, err := textutil.Ints(input)
	if err != nil {
		return nil, err
	}
	if len(crabs) == 0 {
		return nil, textutil.Syntaxf("no crab positions")
	}
	return crabs, nil
}

// Part1 returns the least fuel when each step costs one. The median
// minimises the sum of distances.
func Part1(input string) (int, error) {
	crabs, err := parse(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(crabs)
	target := crabs[len(crabs)/2]
	fuel := 0
	for _, c := range crabs {
		fuel += abs(c - target)
	}
	return fuel, nil
}

// Part2 returns the least fuel when the n-th step costs n.
func Part2(input string) (int, error) {
	crabs, err := parse(input)
	if err != nil {
		return 0, err
	}
	lo, hi := slices.Min(crabs), slices.Max(crabs)
	best := -1
	for target := lo; target <= hi; target++ {
		fuel := 0
		for _, c := range crabs {
			d := abs(c - target)
			fuel += d * (d + 1) / 2
		}
		if best < 0 || fuel < best {
			best = fuel
		}
	}
	return best, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
