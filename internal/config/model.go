package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of every loaded
// manifest.
type Model struct {
	Puzzles []*Puzzle
}

// Puzzle is one manifest entry: which solver to run and on what.
type Puzzle struct {
	// ID selects the registered solver, formatted "YYYY/DD".
	ID    string `validate:"required,puzzleid"`
	Title string
	// Input is a path to the puzzle input. Loaders resolve it relative to
	// the manifest file that declared it.
	Input string `validate:"required_without=Text,excluded_with=Text"`
	// Text is an inline puzzle input.
	Text   string
	Params map[string]cty.Value
	Expect Expect
	// Source is the manifest file the entry was read from.
	Source string
}

// Expect holds the known answers of a puzzle. Nil means unchecked.
type Expect struct {
	Part1 *int
	Part2 *int
}

// Part returns the expected answer for part 1 or 2.
func (e Expect) Part(n int) *int {
	switch n {
	case 1:
		return e.Part1
	case 2:
		return e.Part2
	}
	return nil
}

// ReadInput returns the inline text, or the contents of the input file.
func (p *Puzzle) ReadInput() (string, error) {
	if p.Text != "" {
		return p.Text, nil
	}
	b, err := os.ReadFile(p.Input)
	if err != nil {
		return "", fmt.Errorf("puzzle %s: reading input: %w", p.ID, err)
	}
	return string(b), nil
}

var idRegex = regexp.MustCompile(`^(\d{4})/(\d{2})$`)

// ParseID splits a "YYYY/DD" puzzle identifier.
func ParseID(id string) (year, day int, err error) {
	m := idRegex.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid puzzle id %q: expected YYYY/DD", id)
	}
	year, _ = strconv.Atoi(m[1])
	day, _ = strconv.Atoi(m[2])
	if year < 2015 || year > 2099 {
		return 0, 0, fmt.Errorf("invalid puzzle id %q: year out of range", id)
	}
	if day < 1 || day > 25 {
		return 0, 0, fmt.Errorf("invalid puzzle id %q: day out of range", id)
	}
	return year, day, nil
}
