// Package smokebasin solves 2021/09: find the low points and basins of a
// cave floor height map.
package smokebasin

import (
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
		ID:    "2021/09",
		Title: "Smoke Basin",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

type point struct{ x, y int }

// HeightMap is a grid of heights 0..9.
type HeightMap [][]int

func (h HeightMap) neighbours(p point) []point {
	out := make([]point, 0, 4)
	for _, d := range []point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		q := point{p.x + d.x, p.y + d.y}
		if q.y >= 0 && q.y < len(h) && q.x >= 0 && q.x < len(h[q.y]) {
			out = append(out, q)
		}
	}
	return out
}

func (h HeightMap) at(p point) int { return h[p.y][p.x] }

// LowPoints lists the points lower than all of their orthogonal neighbours.
func (h HeightMap) LowPoints() []point {
	var lows []point
	for y := range h {
		for x := range h[y] {
			p := point{x, y}
			low := true
			for _, q := range h.neighbours(p) {
				if h.at(q) <= h.at(p) {
					low = false
					break
				}
			}
			if low {
				lows = append(lows, p)
			}
		}
	}
	return lows
}

// BasinSize counts the points that flow into the low point: the region
// around it bounded by height 9.
func (h HeightMap) BasinSize(low point) int {
	seen := map[point]bool{low: true}
	stack := []point{low}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, q := range h.neighbours(p) {
			if !seen[q] && h.at(q) < 9 {
				seen[q] = true
				stack = append(stack, q)
			}
		}
	}
	return len(seen)
}

// Part1 sums the risk level (height + 1) of every low point.
func Part1(input string) (int, error) {
	grid, err := textutil.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	h := HeightMap(grid)
	risk := 0
	for _, p := range h.LowPoints() {
		risk += h.at(p) + 1
	}
	return risk, nil
}

// Part2 multiplies the sizes of the three largest basins.
func Part2(input string) (int, error) {
	grid, err := textutil.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	h := HeightMap(grid)
	var sizes []int
	for _, p := range h.LowPoints() {
		sizes = append(sizes, h.BasinSize(p))
	}
	if len(sizes) < 3 {
		return 0, fmt.Errorf("%w: found %d basins, need 3", registry.ErrNoSolution, len(sizes))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes[0] * sizes[1] * sizes[2], nil
}
