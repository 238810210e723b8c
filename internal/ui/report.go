package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/vk/puzzlegrid/internal/runner"
)

// FormatResult renders one result as
// "<id> part <n>: <answer> <status> (<duration>)".
func FormatResult(s Styler, r runner.Result) string {
	var outcome string
	switch r.Status() {
	case runner.StatusOK:
		outcome = fmt.Sprintf("%d %s", r.Answer, s.Pass("ok"))
	case runner.StatusMismatch:
		outcome = fmt.Sprintf("%d %s", r.Answer, s.Fail(fmt.Sprintf("expected %d", *r.Expected)))
	case runner.StatusUnchecked:
		outcome = fmt.Sprintf("%d %s", r.Answer, s.Warn("unchecked"))
	case runner.StatusFailed:
		outcome = s.Fail("error: " + r.Err.Error())
	}
	return fmt.Sprintf("%s part %d: %s %s", r.ID, r.Part, outcome, s.Muted("("+formatDuration(r.Duration)+")"))
}

// FormatSummary renders the closing tally line of a report.
func FormatSummary(s Styler, sum runner.Summary) string {
	line := fmt.Sprintf("%d parts: %d ok, %d mismatch, %d unchecked, %d failed",
		sum.Total(), sum.OK, sum.Mismatch, sum.Unchecked, sum.Failed)
	if sum.Passed() {
		return s.Pass(line)
	}
	return s.Fail(line)
}

// WriteReport writes one line per result followed by the summary.
func WriteReport(w io.Writer, s Styler, results []runner.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, FormatResult(s, r)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, FormatSummary(s, runner.Summarize(results)))
	return err
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(10 * time.Microsecond).String()
}
