// Package textutil holds the small parsing helpers shared by the puzzle
// modules: splitting input into lines and blank-line separated blocks, and
// reading integers and digit grids.
package textutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every error reporting input that does not match a
// puzzle's expected format.
var ErrSyntax = errors.New("syntax error")

// Syntaxf returns an error wrapping ErrSyntax with a formatted description.
func Syntaxf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

// Lines splits input into lines after trimming surrounding whitespace from
// the whole text. Carriage returns and trailing blanks are removed from each
// line. An empty input yields no lines.
func Lines(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}

// Blocks splits input into groups of lines separated by one or more blank
// lines.
func Blocks(input string) [][]string {
	var blocks [][]string
	var cur []string
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Ints parses every integer in s. Fields may be separated by commas and/or
// whitespace.
func Ints(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, Syntaxf("invalid integer %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// DigitGrid parses a rectangular block of single decimal digits.
func DigitGrid(input string) ([][]int, error) {
	lines := Lines(input)
	grid := make([][]int, len(lines))
	for y, l := range lines {
		if len(l) != len(lines[0]) {
			return nil, Syntaxf("line %d: expected %d columns, got %d", y+1, len(lines[0]), len(l))
		}
		row := make([]int, len(l))
		for x := 0; x < len(l); x++ {
			c := l[x]
			if c < '0' || c > '9' {
				return nil, Syntaxf("line %d: unexpected character %q", y+1, c)
			}
			row[x] = int(c - '0')
		}
		grid[y] = row
	}
	return grid, nil
}
