// Package customs solves 2020/06: tally the questions answered "yes" within
// each group of travellers.
package customs

import (
	"math/bits"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2020/06",
		Title: "Custom Customs",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// answers is a set of questions a..z as a bitmask.
type answers uint32

func parseAnswers(line string) (answers, error) {
	var a answers
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < 'a' || c > 'z' {
			return 0, textutil.Syntaxf("unexpected answer %q in %q", c, line)
		}
		a |= 1 << (c - 'a')
	}
	return a, nil
}

// sumGroups folds every group's answer sets with combine and sums the sizes.
func sumGroups(input string, combine func(acc, next answers) answers) (int, error) {
	total := 0
	for _, group := range textutil.Blocks(input) {
		acc, err := parseAnswers(group[0])
		if err != nil {
			return 0, err
		}
		for _, line := range group[1:] {
			a, err := parseAnswers(line)
			if err != nil {
				return 0, err
			}
			acc = combine(acc, a)
		}
		total += bits.OnesCount32(uint32(acc))
	}
	return total, nil
}

// Part1 sums the number of questions anyone in each group answered.
func Part1(input string) (int, error) {
	return sumGroups(input, func(acc, next answers) answers { return acc | next })
}

// Part2 sums the number of questions everyone in each group answered.
func Part2(input string) (int, error) {
	return sumGroups(input, func(acc, next answers) answers { return acc & next })
}
