// Package lanternfish solves 2021/06: model an exponentially growing school
// of lanternfish.
package lanternfish

import (
	"context"
	"fmt"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

const (
	resetTimer = 6
	newTimer   = 8
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2021/06",
		Title: "Lanternfish",
		Params: []registry.ParamDef{
			registry.IntParam("days1", 80, "days simulated in part 1"),
			registry.IntParam("days2", 256, "days simulated in part 2"),
		},
		Part1: withDays("days1"),
		Part2: withDays("days2"),
	})
}

func withDays(param string) registry.SolveFunc {
	return func(_ context.Context, input string, p registry.Params) (int, error) {
		days, err := p.Int(param)
		if err != nil {
			return 0, err
		}
		return Simulate(input, days)
	}
}

// School counts fish by timer value.
type School [newTimer + 1]int

// Parse reads comma-separated timers.
func Parse(input string) (School, error) {
	var s School
	timers, err := textutil.Ints(input)
	if err != nil {
		return s, err
	}
	for _, t := range timers {
		if t < 0 || t > newTimer {
			return s, textutil.Syntaxf("timer %d out of range 0..%d", t, newTimer)
		}
		s[t]++
	}
	return s, nil
}

// Step advances the school by one day.
func (s School) Step() School {
	var next School
	copy(next[:], s[1:])
	next[resetTimer] += s[0]
	next[newTimer] = s[0]
	return next
}

// Size is the number of fish.
func (s School) Size() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Simulate returns the number of fish after the given number of days.
func Simulate(input string, days int) (int, error) {
	if days < 0 {
		return 0, fmt.Errorf("days must not be negative, got %d", days)
	}
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	for range days {
		s = s.Step()
	}
	return s.Size(), nil
}
