// Package octopus solves 2021/11: simulate flashing dumbo octopuses.
package octopus

import (
	"context"
	"fmt"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// stepLimit bounds the search for a synchronised flash.
const stepLimit = 1_000_000

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:     "2021/11",
		Title:  "Dumbo Octopus",
		Params: []registry.ParamDef{registry.IntParam("steps", 100, "steps simulated in part 1")},
		Part1: func(_ context.Context, input string, p registry.Params) (int, error) {
			steps, err := p.Int("steps")
			if err != nil {
				return 0, err
			}
			return Part1(input, steps)
		},
		Part2: registry.Simple(Part2),
	})
}

// Grid holds energy levels.
type Grid [][]int

// Step raises every energy level, cascades flashes to all eight neighbours,
// resets flashed octopuses to zero and returns the number of flashes.
func (g Grid) Step() int {
	var queue [][2]int
	for y := range g {
		for x := range g[y] {
			g[y][x]++
			if g[y][x] == 10 {
				queue = append(queue, [2]int{x, y})
			}
		}
	}

	flashes := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		flashes++
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := p[0]+dx, p[1]+dy
				if (dx == 0 && dy == 0) || y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
					continue
				}
				g[y][x]++
				if g[y][x] == 10 {
					queue = append(queue, [2]int{x, y})
				}
			}
		}
	}

	for y := range g {
		for x := range g[y] {
			if g[y][x] > 9 {
				g[y][x] = 0
			}
		}
	}
	return flashes
}

func (g Grid) size() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// Part1 counts the flashes over the given number of steps.
func Part1(input string, steps int) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("steps must not be negative, got %d", steps)
	}
	grid, err := textutil.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	g := Grid(grid)
	total := 0
	for range steps {
		total += g.Step()
	}
	return total, nil
}

// Part2 returns the first step during which every octopus flashes.
func Part2(input string) (int, error) {
	grid, err := textutil.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	g := Grid(grid)
	if g.size() == 0 {
		return 0, textutil.Syntaxf("empty grid")
	}
	for step := 1; step <= stepLimit; step++ {
		if g.Step() == g.size() {
			return step, nil
		}
	}
	return 0, fmt.Errorf("%w: no synchronised flash within %d steps", registry.ErrNoSolution, stepLimit)
}
