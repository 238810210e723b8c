// Package toboggan solves 2020/03: count the trees hit while sledding down a
// map that repeats endlessly to the right.
package toboggan

import (
	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2020/03",
		Title: "Toboggan Trajectory",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Slope is a movement of Right columns and Down rows per step.
type Slope struct {
	Right, Down int
}

// Slopes are the trajectories multiplied together in part 2.
var Slopes = []Slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// Map is the tree layout. Columns wrap around.
type Map struct {
	trees [][]bool
	width int
}

// ParseMap reads rows of '.' (open) and '#' (tree).
func ParseMap(input string) (*Map, error) {
	lines := textutil.Lines(input)
	if len(lines) == 0 {
		return nil, textutil.Syntaxf("empty map")
	}
	m := &Map{width: len(lines[0])}
	if m.width == 0 {
		return nil, textutil.Syntaxf("line 1: empty row")
	}
	for y, line := range lines {
		if len(line) != m.width {
			return nil, textutil.Syntaxf("line %d: expected %d columns, got %d", y+1, m.width, len(line))
		}
		row := make([]bool, m.width)
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				row[x] = true
			case '.':
			default:
				return nil, textutil.Syntaxf("line %d: unexpected character %q", y+1, line[x])
			}
		}
		m.trees = append(m.trees, row)
	}
	return m, nil
}

// Trees counts the trees hit from the top-left corner until the bottom row
// is passed.
func (m *Map) Trees(s Slope) int {
	n := 0
	for x, y := 0, 0; y < len(m.trees); x, y = x+s.Right, y+s.Down {
		if m.trees[y][x%m.width] {
			n++
		}
	}
	return n
}

// Part1 counts the trees on the slope right 3, down 1.
func Part1(input string) (int, error) {
	m, err := ParseMap(input)
	if err != nil {
		return 0, err
	}
	return m.Trees(Slope{3, 1}), nil
}

// Part2 multiplies the tree counts of every slope in Slopes.
func Part2(input string) (int, error) {
	m, err := ParseMap(input)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, s := range Slopes {
		product *= m.Trees(s)
	}
	return product, nil
}
