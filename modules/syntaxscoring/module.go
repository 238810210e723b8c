// Package syntaxscoring solves 2021/10: score corrupted and incomplete lines
// of bracket chunks.
package syntaxscoring

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
		ID:    "2021/10",
		Title: "Syntax Scoring",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

var closerOf = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

var corruptScore = map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}

var completeScore = map[byte]int{')': 1, ']': 2, '}': 3, '>': 4}

// Check scans a line. It returns the first illegal closing character of a
// corrupted line, or zero and the closers still expected, innermost first.
func Check(line string) (illegal byte, missing []byte, err error) {
	var stack []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if closer, ok := closerOf[c]; ok {
			stack = append(stack, closer)
			continue
		}
		if _, ok := corruptScore[c]; !ok {
			return 0, nil, textutil.Syntaxf("unexpected character %q", c)
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return c, nil, nil
		}
		stack = stack[:len(stack)-1]
	}
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return 0, stack, nil
}

// Part1 sums the scores of the first illegal character on each corrupted
// line.
func Part1(input string) (int, error) {
	total := 0
	for i, line := range textutil.Lines(input) {
		illegal, _, err := Check(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += corruptScore[illegal]
	}
	return total, nil
}

// Part2 returns the median completion score of the incomplete lines.
func Part2(input string) (int, error) {
	var scores []int
	for i, line := range textutil.Lines(input) {
		illegal, missing, err := Check(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if illegal != 0 || len(missing) == 0 {
			continue
		}
		score := 0
		for _, c := range missing {
			score = score*5 + completeScore[c]
		}
		scores = append(scores, score)
	}
	if len(scores)%2 == 0 {
		return 0, fmt.Errorf("%w: %d incomplete lines have no single median", registry.ErrNoSolution, len(scores))
	}
	sort.Ints(scores)
	return scores[len(scores)/2], nil
}
