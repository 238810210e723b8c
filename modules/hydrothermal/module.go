// Package hydrothermal solves 2021/05: count the points where lines of
// hydrothermal vents overlap.
package hydrothermal

import (
	"regexp"
	"strconv"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2021/05",
		Title: "Hydrothermal Venture",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Segment is a vent line. Both ends are included.
type Segment struct {
	From, To Point
}

// Diagonal reports whether the segment runs at 45 degrees.
func (s Segment) Diagonal() bool {
	return s.From.X != s.To.X && s.From.Y != s.To.Y
}

// Points lists every point on the segment.
func (s Segment) Points() []Point {
	dx, dy := sign(s.To.X-s.From.X), sign(s.To.Y-s.From.Y)
	steps := max(abs(s.To.X-s.From.X), abs(s.To.Y-s.From.Y))
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, Point{s.From.X + i*dx, s.From.Y + i*dy})
	}
	return pts
}

var segmentRegex = regexp.MustCompile(`^(\d+),(\d+) -> (\d+),(\d+)$`)

// Parse reads one "x1,y1 -> x2,y2" segment per line. Only horizontal,
// vertical and 45 degree segments are accepted.
func Parse(input string) ([]Segment, error) {
	var segs []Segment
	for i, line := range textutil.Lines(input) {
		m := segmentRegex.FindStringSubmatch(line)
		if m == nil {
			return nil, textutil.Syntaxf("line %d: %q", i+1, line)
		}
		var c [4]int
		for k := range c {
			n, err := strconv.Atoi(m[k+1])
			if err != nil {
				return nil, textutil.Syntaxf("line %d: %q", i+1, line)
			}
			c[k] = n
		}
		s := Segment{From: Point{c[0], c[1]}, To: Point{c[2], c[3]}}
		if s.Diagonal() && abs(c[2]-c[0]) != abs(c[3]-c[1]) {
			return nil, textutil.Syntaxf("line %d: segment is not horizontal, vertical or 45 degrees", i+1)
		}
		segs = append(segs, s)
	}
	return segs, nil
}

func overlaps(input string, diagonals bool) (int, error) {
	segs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	counts := make(map[Point]int)
	overlap := 0
	for _, s := range segs {
		if s.Diagonal() && !diagonals {
			continue
		}
		for _, p := range s.Points() {
			counts[p]++
			if counts[p] == 2 {
				overlap++
			}
		}
	}
	return overlap, nil
}

// Part1 counts points covered by two or more horizontal or vertical lines.
func Part1(input string) (int, error) {
	return overlaps(input, false)
}

// Part2 also counts the diagonal lines.
func Part2(input string) (int, error) {
	return overlaps(input, true)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
