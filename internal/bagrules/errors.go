package bagrules

import (
	"errors"
	"fmt"

	"github.com/vk/puzzlegrid/internal/textutil"
)

// ErrCycle is returned by queries that have no finite answer on a cyclic
// graph.
var ErrCycle = errors.New("rule graph contains a cycle")

// ErrOverflow is returned when a bag total does not fit in an int.
var ErrOverflow = errors.New("bag total overflows int")

// SyntaxError reports a rule sentence that does not match the grammar.
type SyntaxError struct {
	Line   int    // 1-based line number in the parsed text
	Text   string // the offending line
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap lets callers match any rule syntax error with textutil.ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return textutil.ErrSyntax
}

// CycleError names a bag found on a cycle.
type CycleError struct {
	Bag BagSpec
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: involving bag %q", ErrCycle, e.Bag)
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}
