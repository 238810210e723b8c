// Package bagrules models the luggage rules of the "handy haversacks" puzzle
// as a directed multigraph and answers the two questions asked about it.
//
// # Rules
//
// A rule sentence names a containing bag and the bags it must hold:
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//	faded blue bags contain no other bags.
//
// Every bag is identified by a BagSpec, a (modifier, color) pair. Parse turns
// newline-separated sentences into a Graph whose edges carry the quantity of
// the contained bag.
//
// # Representation
//
// Bags are interned into an arena: each distinct BagSpec gets a dense integer
// index, and adjacency lists are stored by index. Keys are owned strings, so a
// Graph does not retain the input text it was parsed from. A BagSpec that never
// appears as the subject of a rule has no outgoing edges and is treated as a
// leaf by every query.
//
// # Queries
//
//   - Contains reports whether one bag can eventually hold another.
//   - CountContainers and Containers count the colors that can eventually hold
//     a given bag; the first walks downward from every key, the second walks
//     the reversed graph upward from the needle.
//   - TotalContained sums the bags nested inside a root, weighting every edge
//     by its quantity.
//
// All traversals use an explicit stack, so deeply nested rules cannot exhaust
// the call stack. Puzzle inputs are acyclic. Contains tolerates cycles through
// its visited set; TotalContained has no finite answer on a cycle and reports
// ErrCycle instead. DetectCycles checks a whole graph up front.
//
// A Graph is immutable once Parse returns and is safe for concurrent readers.
package bagrules
