package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/puzzlegrid/internal/config"
	"github.com/vk/puzzlegrid/internal/runner"
	"github.com/vk/puzzlegrid/internal/ui"
)

// ErrRunFailed is returned by Run when any part mismatched or failed.
var ErrRunFailed = errors.New("run failed")

// Run executes the main application logic: load the manifests, check them
// against the registry, run every selected puzzle part and write the report.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	if len(a.config.ManifestPaths) == 0 {
		return errors.New("at least one manifest path is required")
	}

	model, err := a.loader.Load(ctx, a.config.ManifestPaths...)
	if err != nil {
		return fmt.Errorf("failed to load manifests: %w", err)
	}
	a.logger.Debug("Manifests loaded into unified model.", "puzzles", len(model.Puzzles))

	if err := model.Validate(); err != nil {
		return err
	}

	model, err = filterModel(model, a.config.Only)
	if err != nil {
		return err
	}

	if err := a.registry.ValidateModel(ctx, model); err != nil {
		return err
	}
	a.logger.Debug("Registry validation passed.")

	if len(model.Puzzles) == 0 {
		a.logger.Warn("No puzzles selected, execution not required.")
		return nil
	}

	results, err := runner.New(a.registry, a.config.WorkerCount).Run(ctx, model)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	styler := ui.NewStyler(!a.config.NoColor && ui.ShouldUseColor(a.outW))
	if err := ui.WriteReport(a.outW, styler, results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	summary := runner.Summarize(results)
	a.logger.Info("Run summary.",
		"ok", summary.OK,
		"mismatch", summary.Mismatch,
		"unchecked", summary.Unchecked,
		"failed", summary.Failed,
	)
	if !summary.Passed() {
		return fmt.Errorf("%w: %d mismatched, %d failed", ErrRunFailed, summary.Mismatch, summary.Failed)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// filterModel keeps only the entries whose id is listed in only. Every id in
// only must appear in the model.
func filterModel(model *config.Model, only []string) (*config.Model, error) {
	if len(only) == 0 {
		return model, nil
	}

	wanted := make(map[string]bool, len(only))
	for _, id := range only {
		wanted[id] = false
	}

	filtered := &config.Model{}
	for _, p := range model.Puzzles {
		if _, ok := wanted[p.ID]; ok {
			wanted[p.ID] = true
			filtered.Puzzles = append(filtered.Puzzles, p)
		}
	}

	var missing []string
	for _, id := range only {
		if !wanted[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("--only names puzzles absent from the manifests: %s", strings.Join(missing, ", "))
	}
	return filtered, nil
}
