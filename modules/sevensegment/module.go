// Package sevensegment solves 2021/08: untangle scrambled seven-segment
// display wiring.
package sevensegment

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2021/08",
		Title: "Seven Segment Search",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// pattern is a set of lit segments a..g as a bitmask.
type pattern uint8

func (p pattern) size() int { return bits.OnesCount8(uint8(p)) }

func (p pattern) contains(q pattern) bool { return p&q == q }

func parsePattern(s string) (pattern, error) {
	var p pattern
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'g' {
			return 0, textutil.Syntaxf("invalid segment %q in %q", c, s)
		}
		p |= 1 << (c - 'a')
	}
	return p, nil
}

// Entry is one display: ten unique signal patterns and four output digits.
type Entry struct {
	Signals [10]pattern
	Output  [4]pattern
}

// Parse reads "<10 patterns> | <4 patterns>" lines.
func Parse(input string) ([]Entry, error) {
	var entries []Entry
	for i, line := range textutil.Lines(input) {
		left, right, ok := strings.Cut(line, "|")
		if !ok {
			return nil, textutil.Syntaxf("line %d: missing '|'", i+1)
		}
		signals, outputs := strings.Fields(left), strings.Fields(right)
		if len(signals) != 10 || len(outputs) != 4 {
			return nil, textutil.Syntaxf("line %d: expected 10 patterns and 4 outputs, got %d and %d", i+1, len(signals), len(outputs))
		}
		var e Entry
		for k, s := range signals {
			p, err := parsePattern(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			e.Signals[k] = p
		}
		for k, s := range outputs {
			p, err := parsePattern(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			e.Output[k] = p
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Decode returns the four-digit number shown by the entry's outputs.
func (e Entry) Decode() (int, error) {
	var one, four pattern
	for _, p := range e.Signals {
		switch p.size() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return 0, fmt.Errorf("%w: signals lack the patterns of 1 and 4", registry.ErrNoSolution)
	}

	digits := make(map[pattern]int, 10)
	for _, p := range e.Signals {
		var d int
		switch p.size() {
		case 2:
			d = 1
		case 3:
			d = 7
		case 4:
			d = 4
		case 7:
			d = 8
		case 5:
			switch {
			case p.contains(one):
				d = 3
			case (p & four).size() == 3:
				d = 5
			default:
				d = 2
			}
		case 6:
			switch {
			case !p.contains(one):
				d = 6
			case p.contains(four):
				d = 9
			default:
				d = 0
			}
		default:
			return 0, fmt.Errorf("%w: pattern with %d segments", registry.ErrNoSolution, p.size())
		}
		digits[p] = d
	}

	n := 0
	for _, p := range e.Output {
		d, ok := digits[p]
		if !ok {
			return 0, fmt.Errorf("%w: output pattern is not among the signals", registry.ErrNoSolution)
		}
		n = n*10 + d
	}
	return n, nil
}

// Part1 counts output digits that are 1, 4, 7 or 8, which are identified by
// their segment count alone.
func Part1(input string) (int, error) {
	entries, err := Parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		for _, p := range e.Output {
			switch p.size() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n, nil
}

// Part2 sums the decoded output values.
func Part2(input string) (int, error) {
	entries, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, e := range entries {
		v, err := e.Decode()
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}
