// Package passwords solves 2020/02: count passwords that satisfy the
// corporate policy they were stored with.
package passwords

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2020/02",
		Title: "Password Philosophy",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Entry is one "lo-hi c: password" line.
type Entry struct {
	Lo, Hi   int
	Letter   byte
	Password string
}

var entryRegex = regexp.MustCompile(`^(\d+)-(\d+) (\S): (\S+)$`)

// ParseEntry parses a single database line.
func ParseEntry(line string) (Entry, error) {
	m := entryRegex.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, textutil.Syntaxf("invalid entry %q", line)
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return Entry{}, textutil.Syntaxf("invalid entry %q", line)
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, textutil.Syntaxf("invalid entry %q", line)
	}
	if lo < 1 || hi < lo {
		return Entry{}, textutil.Syntaxf("invalid range %d-%d in %q", lo, hi, line)
	}
	return Entry{Lo: lo, Hi: hi, Letter: m[3][0], Password: m[4]}, nil
}

// ValidCount reports whether the letter occurs between Lo and Hi times.
func (e Entry) ValidCount() bool {
	n := strings.Count(e.Password, string(e.Letter))
	return n >= e.Lo && n <= e.Hi
}

// ValidPosition reports whether exactly one of the 1-based positions Lo and
// Hi holds the letter.
func (e Entry) ValidPosition() bool {
	at := func(pos int) bool {
		return pos <= len(e.Password) && e.Password[pos-1] == e.Letter
	}
	return at(e.Lo) != at(e.Hi)
}

func count(input string, valid func(Entry) bool) (int, error) {
	n := 0
	for _, line := range textutil.Lines(input) {
		e, err := ParseEntry(line)
		if err != nil {
			return 0, err
		}
		if valid(e) {
			n++
		}
	}
	return n, nil
}

// Part1 counts passwords valid under the occurrence-range policy.
func Part1(input string) (int, error) {
	return count(input, Entry.ValidCount)
}

// Part2 counts passwords valid under the exactly-one-position policy.
func Part2(input string) (int, error) {
	return count(input, Entry.ValidPosition)
}
