package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/puzzlegrid/internal/app"
	"github.com/vk/puzzlegrid/internal/registry"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Report    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest writes files into a temporary directory and runs the app
// over it with a background context. File names are relative paths; the
// directory itself is the manifest path.
func RunIntegrationTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, nil, modules...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller context
// and an optional --only selection.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, only []string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	cfg := &app.Config{
		ManifestPaths: []string{dir},
		Only:          only,
		NoColor:       true,
	}
	testApp, out, logs := app.SetupAppTest(t, cfg, modules...)

	err := testApp.Run(ctx)

	return &HarnessResult{
		Report:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
		App:       testApp,
	}
}

// WriteFiles creates every file under a fresh temporary directory and returns
// the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
