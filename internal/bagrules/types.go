package bagrules

import (
	"fmt"
	"strings"
)

// BagSpec identifies a bag variant by its modifier and color, e.g. "shiny gold".
type BagSpec struct {
	Modifier string
	Color    string
}

// String returns the two-word form used in rule sentences.
func (b BagSpec) String() string {
	return b.Modifier + " " + b.Color
}

// ParseBagSpec parses the two-word form of a BagSpec, e.g. "shiny gold".
func ParseBagSpec(s string) (BagSpec, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return BagSpec{}, fmt.Errorf("bag spec must be two words, got %q", s)
	}
	return BagSpec{Modifier: fields[0], Color: fields[1]}, nil
}

// Edge is one "contains Quantity of Bag" relationship.
type Edge struct {
	Quantity int
	Bag      BagSpec
}

type edge struct {
	qty int
	to  int
}

// Graph is the parsed rule set. The zero value is not usable; build one with
// Parse.
type Graph struct {
	index    map[BagSpec]int
	specs    []BagSpec
	edges    [][]edge
	declared []bool
	keys     []int // indices of rule subjects, in first-declaration order
}

func newGraph() *Graph {
	return &Graph{index: make(map[BagSpec]int)}
}

// intern returns the arena index of b, adding it if needed.
func (g *Graph) intern(b BagSpec) int {
	if i, ok := g.index[b]; ok {
		return i
	}
	i := len(g.specs)
	g.index[b] = i
	g.specs = append(g.specs, b)
	g.edges = append(g.edges, nil)
	g.declared = append(g.declared, false)
	return i
}

// declare records b as the subject of a rule.
func (g *Graph) declare(b BagSpec) int {
	i := g.intern(b)
	if !g.declared[i] {
		g.declared[i] = true
		g.keys = append(g.keys, i)
	}
	return i
}

func (g *Graph) addEdge(from int, qty int, to BagSpec) {
	t := g.intern(to)
	g.edges[from] = append(g.edges[from], edge{qty: qty, to: t})
}

// Keys returns every bag that appears as the subject of a rule, in the order
// the rules declared them.
func (g *Graph) Keys() []BagSpec {
	out := make([]BagSpec, len(g.keys))
	for i, k := range g.keys {
		out[i] = g.specs[k]
	}
	return out
}

// Len returns the number of distinct bags mentioned anywhere in the rules.
func (g *Graph) Len() int {
	return len(g.specs)
}

// Has reports whether b is mentioned anywhere in the rules.
func (g *Graph) Has(b BagSpec) bool {
	_, ok := g.index[b]
	return ok
}

// Edges returns the outgoing edges of b in insertion order. A bag absent from
// the graph has none.
func (g *Graph) Edges(b BagSpec) []Edge {
	i, ok := g.index[b]
	if !ok {
		return nil
	}
	out := make([]Edge, len(g.edges[i]))
	for j, e := range g.edges[i] {
		out[j] = Edge{Quantity: e.qty, Bag: g.specs[e.to]}
	}
	return out
}

// Rules returns the graph as a plain map from every declared bag to its
// edges. Bags declared with "no other bags" map to an empty slice.
func (g *Graph) Rules() map[BagSpec][]Edge {
	out := make(map[BagSpec][]Edge, len(g.keys))
	for _, k := range g.keys {
		out[g.specs[k]] = append([]Edge{}, g.Edges(g.specs[k])...)
	}
	return out
}
