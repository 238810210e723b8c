package bagrules

import (
	"fmt"
	"math"
	"sort"

	"github.com/dominikbraun/graph"
)

// Contains reports whether needle is a direct or transitive neighbour of root.
// The root itself does not count unless a cycle leads back to it. Bags absent
// from the graph contain nothing.
func (g *Graph) Contains(root, needle BagSpec) bool {
	r, ok := g.index[root]
	if !ok {
		return false
	}
	n, ok := g.index[needle]
	if !ok {
		return false
	}

	visited := make([]bool, len(g.specs))
	visited[r] = true
	stack := []int{r}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.edges[cur] {
			if e.to == n {
				return true
			}
			if !visited[e.to] {
				visited[e.to] = true
				stack = append(stack, e.to)
			}
		}
	}
	return false
}

// CountContainers returns how many declared bags other than needle can
// eventually contain a needle bag.
func (g *Graph) CountContainers(needle BagSpec) int {
	count := 0
	for _, k := range g.keys {
		spec := g.specs[k]
		if spec == needle {
			continue
		}
		if g.Contains(spec, needle) {
			count++
		}
	}
	return count
}

// Reverse returns a graph with every edge flipped: if A contains q of B, the
// reversed graph says B is contained q times in A.
func (g *Graph) Reverse() *Graph {
	rev := newGraph()
	for _, k := range g.keys {
		for _, e := range g.edges[k] {
			to := rev.declare(g.specs[e.to])
			rev.addEdge(to, e.qty, g.specs[k])
		}
	}
	return rev
}

// Containers walks upward from needle and returns every distinct bag that can
// eventually contain it, sorted by name.
func (g *Graph) Containers(needle BagSpec) []BagSpec {
	if _, ok := g.index[needle]; !ok {
		return nil
	}

	dg := g.directed()
	preds, err := dg.PredecessorMap()
	if err != nil {
		panic(fmt.Sprintf("bagrules: predecessor map: %v", err))
	}

	start := bagHash(needle)
	visited := map[string]bool{start: true}
	stack := []string{start}
	var out []BagSpec
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for parent := range preds[cur] {
			if visited[parent] {
				continue
			}
			visited[parent] = true
			b, err := dg.Vertex(parent)
			if err != nil {
				panic(fmt.Sprintf("bagrules: vertex %q: %v", parent, err))
			}
			out = append(out, b)
			stack = append(stack, parent)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

const (
	unvisited uint8 = iota
	inProgress
	done
)

// TotalContained returns the number of bags required inside root: every edge
// (q, child) contributes q + q*TotalContained(child). The root itself is not
// counted, and a leaf yields 0. A cycle reachable from root yields ErrCycle,
// and a total beyond math.MaxInt yields ErrOverflow.
func (g *Graph) TotalContained(root BagSpec) (int, error) {
	r, ok := g.index[root]
	if !ok {
		return 0, nil
	}

	type frame struct {
		node int
		next int
	}

	state := make([]uint8, len(g.specs))
	totals := make([]int, len(g.specs))
	state[r] = inProgress
	stack := []frame{{node: r}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(g.edges[top.node]) {
			child := g.edges[top.node][top.next].to
			top.next++
			switch state[child] {
			case inProgress:
				return 0, &CycleError{Bag: g.specs[child]}
			case unvisited:
				state[child] = inProgress
				stack = append(stack, frame{node: child})
			}
			continue
		}

		sum := 0
		for _, e := range g.edges[top.node] {
			n, ok := addContents(sum, e.qty, totals[e.to])
			if !ok {
				return 0, fmt.Errorf("%w: inside bag %q", ErrOverflow, g.specs[top.node])
			}
			sum = n
		}
		totals[top.node] = sum
		state[top.node] = done
		stack = stack[:len(stack)-1]
	}

	return totals[r], nil
}

// addContents returns sum + qty*(inner+1). All operands are non-negative.
func addContents(sum, qty, inner int) (int, bool) {
	if inner == math.MaxInt {
		return 0, false
	}
	per := inner + 1
	if qty > math.MaxInt/per {
		return 0, false
	}
	n := qty * per
	if sum > math.MaxInt-n {
		return 0, false
	}
	return sum + n, true
}

// DetectCycles checks the whole graph and returns a *CycleError naming a bag
// on a cycle, or nil for a DAG. When several cycles exist the bag mentioned
// first in the rules is named.
func (g *Graph) DetectCycles() error {
	found := -1
	note := func(i int) {
		if found < 0 || i < found {
			found = i
		}
	}

	for from, edges := range g.edges {
		for _, e := range edges {
			if e.to == from {
				note(from)
			}
		}
	}

	dg := g.directed()
	sccs, err := graph.StronglyConnectedComponents(dg)
	if err != nil {
		return fmt.Errorf("finding strongly connected components: %w", err)
	}
	for _, comp := range sccs {
		if len(comp) < 2 {
			continue
		}
		for _, h := range comp {
			b, err := dg.Vertex(h)
			if err != nil {
				return fmt.Errorf("looking up bag %q: %w", h, err)
			}
			note(g.index[b])
		}
	}

	if found < 0 {
		return nil
	}
	return &CycleError{Bag: g.specs[found]}
}
