// Package diagnostic solves 2021/03: derive power and life support ratings
// from a report of binary numbers.
package diagnostic

import (
	"fmt"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2021/03",
		Title: "Binary Diagnostic",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Report is a list of equal-width binary numbers.
type Report struct {
	Values []int
	Width  int
}

// Parse reads one binary number per line.
func Parse(input string) (*Report, error) {
	lines := textutil.Lines(input)
	if len(lines) == 0 {
		return nil, textutil.Syntaxf("empty report")
	}
	r := &Report{Width: len(lines[0])}
	if r.Width == 0 || r.Width > 62 {
		return nil, textutil.Syntaxf("line 1: unsupported width %d", r.Width)
	}
	for i, line := range lines {
		if len(line) != r.Width {
			return nil, textutil.Syntaxf("line %d: expected %d bits, got %d", i+1, r.Width, len(line))
		}
		v := 0
		for j := 0; j < len(line); j++ {
			v <<= 1
			switch line[j] {
			case '1':
				v |= 1
			case '0':
			default:
				return nil, textutil.Syntaxf("line %d: unexpected character %q", i+1, line[j])
			}
		}
		r.Values = append(r.Values, v)
	}
	return r, nil
}

// ones counts the values with the given bit set.
func ones(values []int, bit int) int {
	n := 0
	for _, v := range values {
		n += (v >> bit) & 1
	}
	return n
}

// Part1 multiplies the gamma rate (most common bits) by the epsilon rate
// (least common bits).
func Part1(input string) (int, error) {
	r, err := Parse(input)
	if err != nil {
		return 0, err
	}
	gamma := 0
	for bit := r.Width - 1; bit >= 0; bit-- {
		gamma <<= 1
		if 2*ones(r.Values, bit) >= len(r.Values) {
			gamma |= 1
		}
	}
	epsilon := ^gamma & (1<<r.Width - 1)
	return gamma * epsilon, nil
}

// sieve repeatedly keeps the values whose bit, from the most significant
// down, matches the bit chosen by keepOnes from the count of ones.
func sieve(r *Report, keepOnes func(ones, total int) bool) (int, error) {
	values := append([]int(nil), r.Values...)
	for bit := r.Width - 1; bit >= 0 && len(values) > 1; bit-- {
		want := 0
		if keepOnes(ones(values, bit), len(values)) {
			want = 1
		}
		kept := values[:0]
		for _, v := range values {
			if (v>>bit)&1 == want {
				kept = append(kept, v)
			}
		}
		values = kept
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("%w: bit criteria left %d values", registry.ErrNoSolution, len(values))
	}
	return values[0], nil
}

// Part2 multiplies the oxygen generator rating by the CO2 scrubber rating.
func Part2(input string) (int, error) {
	r, err := Parse(input)
	if err != nil {
		return 0, err
	}
	oxygen, err := sieve(r, func(ones, total int) bool { return 2*ones >= total })
	if err != nil {
		return 0, fmt.Errorf("oxygen rating: %w", err)
	}
	co2, err := sieve(r, func(ones, total int) bool { return 2*ones < total })
	if err != nil {
		return 0, fmt.Errorf("CO2 rating: %w", err)
	}
	return oxygen * co2, nil
}
