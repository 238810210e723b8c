package bagrules

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

func bagHash(b BagSpec) string {
	return b.String()
}

// directed projects the rule multigraph onto a simple directed graph keyed by
// the two-word bag name. Parallel edges collapse into one and quantities are
// dropped, so only reachability questions may be asked of it.
func (g *Graph) directed() graph.Graph[string, BagSpec] {
	dg := graph.New(bagHash, graph.Directed())
	for _, b := range g.specs {
		if err := dg.AddVertex(b); err != nil {
			panic(fmt.Sprintf("bagrules: adding vertex %q: %v", b, err))
		}
	}
	for from, edges := range g.edges {
		for _, e := range edges {
			err := dg.AddEdge(bagHash(g.specs[from]), bagHash(g.specs[e.to]))
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				panic(fmt.Sprintf("bagrules: adding edge %q -> %q: %v", g.specs[from], g.specs[e.to], err))
			}
		}
	}
	return dg
}
