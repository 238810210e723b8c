// Package runner executes the puzzle parts named by a manifest and checks
// their answers.
//
// A run has two phases. Preparation resolves every manifest entry against
// the registry, binds its params and reads its input; any problem found here
// fails the whole run before a single solver starts, and every problem is
// reported at once. Execution then fans the prepared parts out to a bounded
// pool of goroutines. Each solver itself is single-threaded and shares no
// state with the others, so parts may finish in any order; results are
// always returned in manifest order, part 1 before part 2.
package runner
