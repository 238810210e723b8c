package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/puzzlegrid/internal/config"
	"github.com/vk/puzzlegrid/internal/ctxlog"
	"github.com/vk/puzzlegrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
	config   *Config
	runID    string
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Reports go to outW and logs to logW. With no modules given, every puzzle
// compiled into the binary is registered.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	runID := uuid.NewString()
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "modules", len(modules), "puzzles", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   loader,
		config:   appConfig,
		runID:    runID,
	}
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// RunID returns the identifier attached to every log record of this App.
func (a *App) RunID() string {
	return a.runID
}

// List writes the id and title of every registered puzzle to the report writer.
func (a *App) List() error {
	for _, p := range a.registry.Puzzles() {
		if _, err := fmt.Fprintf(a.outW, "%s  %s\n", p.ID, p.Title); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
