package bagrules

import (
	"regexp"
	"strconv"
	"strings"
)

const noOtherBags = "no other bags"

var (
	// sentenceRegex splits a rule into its subject and its contents.
	sentenceRegex = regexp.MustCompile(`^(\S+) (\S+) bags? contain (.+)\.$`)
	// itemRegex matches a single "<N> <modifier> <color> bag(s)" item.
	itemRegex = regexp.MustCompile(`^(\d+) (\S+) (\S+) bags?$`)
)

// Parse builds a rule graph from newline-separated rule sentences. Blank
// lines and surrounding whitespace are ignored. The first sentence that does
// not match the grammar aborts parsing with a *SyntaxError.
func Parse(text string) (*Graph, error) {
	g := newGraph()
	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := g.parseSentence(line); err != nil {
			err.Line = n + 1
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) parseSentence(line string) *SyntaxError {
	m := sentenceRegex.FindStringSubmatch(line)
	if m == nil {
		return &SyntaxError{Text: line, Reason: "expected \"<modifier> <color> bags contain ...\""}
	}
	subject := g.declare(BagSpec{Modifier: m[1], Color: m[2]})

	contents := m[3]
	if contents == noOtherBags {
		return nil
	}

	for _, item := range strings.Split(contents, ", ") {
		im := itemRegex.FindStringSubmatch(item)
		if im == nil {
			return &SyntaxError{Text: line, Reason: "invalid contained bag " + strconv.Quote(item)}
		}
		qty, err := strconv.Atoi(im[1])
		if err != nil {
			return &SyntaxError{Text: line, Reason: "quantity out of range"}
		}
		if qty < 1 {
			return &SyntaxError{Text: line, Reason: "quantity must be positive"}
		}
		g.addEdge(subject, qty, BagSpec{Modifier: im[2], Color: im[3]})
	}
	return nil
}
