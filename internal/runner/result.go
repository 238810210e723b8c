package runner

import (
	"time"
)

// Status classifies the outcome of one puzzle part.
type Status int

const (
	// StatusOK means the answer matched the expected value.
	StatusOK Status = iota
	// StatusMismatch means the answer differed from the expected value.
	StatusMismatch
	// StatusUnchecked means no expected value was given.
	StatusUnchecked
	// StatusFailed means the solver returned an error.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMismatch:
		return "mismatch"
	case StatusUnchecked:
		return "unchecked"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of running one part of one puzzle.
type Result struct {
	ID       string
	Title    string
	Part     int
	Answer   int
	Expected *int
	Duration time.Duration
	Err      error
}

// Status derives the outcome class of the result.
func (r Result) Status() Status {
	switch {
	case r.Err != nil:
		return StatusFailed
	case r.Expected == nil:
		return StatusUnchecked
	case *r.Expected == r.Answer:
		return StatusOK
	}
	return StatusMismatch
}

// Summary counts results by status.
type Summary struct {
	OK        int
	Mismatch  int
	Unchecked int
	Failed    int
}

// Summarize tallies a set of results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status() {
		case StatusOK:
			s.OK++
		case StatusMismatch:
			s.Mismatch++
		case StatusUnchecked:
			s.Unchecked++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Total is the number of results counted.
func (s Summary) Total() int {
	return s.OK + s.Mismatch + s.Unchecked + s.Failed
}

// Passed reports whether the run had no mismatches and no failures.
func (s Summary) Passed() bool {
	return s.Mismatch == 0 && s.Failed == 0
}
