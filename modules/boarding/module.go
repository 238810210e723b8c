// Package boarding solves 2020/05: decode binary space partitioned boarding
// passes into seat IDs.
package boarding

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
		ID:    "2020/05",
		Title: "Binary Boarding",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Seat is a position on the plane.
type Seat struct {
	Row, Col int
}

// ID is row * 8 + column.
func (s Seat) ID() int {
	return s.Row*8 + s.Col
}

// ParseSeat decodes a pass of seven F/B characters followed by three L/R
// characters. B and R select the upper half.
func ParseSeat(pass string) (Seat, error) {
	if len(pass) != 10 {
		return Seat{}, textutil.Syntaxf("boarding pass %q: expected 10 characters", pass)
	}
	var s Seat
	for i := 0; i < 7; i++ {
		s.Row <<= 1
		switch pass[i] {
		case 'B':
			s.Row |= 1
		case 'F':
		default:
			return Seat{}, textutil.Syntaxf("boarding pass %q: row character %q", pass, pass[i])
		}
	}
	for i := 7; i < 10; i++ {
		s.Col <<= 1
		switch pass[i] {
		case 'R':
			s.Col |= 1
		case 'L':
		default:
			return Seat{}, textutil.Syntaxf("boarding pass %q: column character %q", pass, pass[i])
		}
	}
	return s, nil
}

func seatIDs(input string) ([]int, error) {
	lines := textutil.Lines(input)
	if len(lines) == 0 {
		return nil, textutil.Syntaxf("no boarding passes")
	}
	ids := make([]int, 0, len(lines))
	for _, line := range lines {
		s, err := ParseSeat(line)
		if err != nil {
			return nil, err
		}
		ids = append(ids, s.ID())
	}
	return ids, nil
}

// Part1 returns the highest seat ID.
func Part1(input string) (int, error) {
	ids, err := seatIDs(input)
	if err != nil {
		return 0, err
	}
	highest := ids[0]
	for _, id := range ids[1:] {
		highest = max(highest, id)
	}
	return highest, nil
}

// Part2 returns the only missing seat ID whose neighbours are both taken.
func Part2(input string) (int, error) {
	ids, err := seatIDs(input)
	if err != nil {
		return 0, err
	}
	sort.Ints(ids)

	var gaps []int
	for i := 1; i < len(ids); i++ {
		if ids[i]-ids[i-1] == 2 {
			gaps = append(gaps, ids[i]-1)
		}
	}
	if len(gaps) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one free seat between taken seats, found %d", registry.ErrNoSolution, len(gaps))
	}
	return gaps[0], nil
}
