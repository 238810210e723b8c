package bagrules

import (
	"strconv"
	"strings"
)

// String serializes the graph back into rule sentences, one per declared bag
// in declaration order. Parse(g.String()) yields a graph with the same edges.
func (g *Graph) String() string {
	var sb strings.Builder
	for _, k := range g.keys {
		sb.WriteString(g.specs[k].String())
		sb.WriteString(" bags contain ")
		if len(g.edges[k]) == 0 {
			sb.WriteString(noOtherBags)
		}
		for i, e := range g.edges[k] {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(e.qty))
			sb.WriteRune(' ')
			sb.WriteString(g.specs[e.to].String())
			if e.qty == 1 {
				sb.WriteString(" bag")
			} else {
				sb.WriteString(" bags")
			}
		}
		sb.WriteString(".\n")
	}
	return sb.String()
}
