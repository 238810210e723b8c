package integration_tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/puzzlegrid/internal/app"
	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/testutil"
)

func constant(n int) registry.SolveFunc {
	return registry.Simple(func(string) (int, error) { return n, nil })
}

func TestErrorHandling_InvalidHCLIsRejected(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `puzzle "2099/20" {`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.SimpleModule{ID: "2099/20", Part1: constant(1), Part2: constant(1)})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "failed to load manifests")
	assert.Empty(t, result.Report)
}

func TestErrorHandling_ManifestValidationCollectsAllProblems(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			puzzle "20/1" {
				text = "x"
			}
			puzzle "2099/21" {
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.SimpleModule{ID: "2099/21", Part1: constant(1), Part2: constant(1)})

	// --- Assert ---
	require.Error(t, result.Err)
	msg := result.Err.Error()
	assert.Contains(t, msg, "manifest validation failed")
	assert.Contains(t, msg, "puzzle #1 (20/1)")
	assert.Contains(t, msg, "puzzle #2 (2099/21)")
}

func TestErrorHandling_ParityCheckRejectsUnknownPuzzlesAndParams(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			puzzle "2099/22" {
				text   = "x"
				params = { bogus = 1 }
			}
			puzzle "2099/23" {
				text = "x"
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.SimpleModule{ID: "2099/22", Part1: constant(1), Part2: constant(1)})

	// --- Assert ---
	require.Error(t, result.Err)
	msg := result.Err.Error()
	assert.Contains(t, msg, "registry validation failed")
	assert.Contains(t, msg, "puzzle '2099/23': no solver registered for this id")
	assert.Contains(t, msg, "bogus")
	assert.Empty(t, result.Report, "nothing runs when validation fails")
}

func TestErrorHandling_MismatchAndFailureFailTheRun(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			puzzle "2099/24" {
				text = "x"
				expect {
					part1 = 1
					part2 = 5
				}
			}
		`,
	}
	failing := registry.Simple(func(string) (int, error) {
		return 0, errors.New("boom")
	})

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.SimpleModule{ID: "2099/24", Part1: failing, Part2: constant(4)})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, app.ErrRunFailed)
	assert.Contains(t, result.Err.Error(), "1 mismatched, 1 failed")
	assert.Contains(t, result.Report, "2099/24 part 1: error: boom")
	assert.Contains(t, result.Report, "2099/24 part 2: 4 expected 5")
}

func TestErrorHandling_SolverPanicIsReported(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			puzzle "2099/25" {
				text = "x"
			}
		`,
	}
	panicking := registry.Simple(func(string) (int, error) {
		panic("index out of range")
	})

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.SimpleModule{ID: "2099/25", Part1: panicking, Part2: constant(1)})

	// --- Assert ---
	require.ErrorIs(t, result.Err, app.ErrRunFailed)
	assert.Contains(t, result.Report, "solver panicked: index out of range")
}
