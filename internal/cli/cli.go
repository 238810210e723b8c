package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vk/puzzlegrid/internal/config"
	"github.com/vk/puzzlegrid/internal/registry"
)

// Exit codes.
const (
	CodeFailure = 1
	CodeUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func failure(err error) error {
	return &ExitError{Code: CodeFailure, Message: err.Error()}
}

// Deps are the collaborators the commands hand to the application.
type Deps struct {
	Loader  config.Loader
	Modules []registry.Module // empty selects every compiled-in puzzle
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewRootCommand builds the puzzlegrid command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "puzzlegrid",
		Short: "Run daily puzzle solvers against manifests of inputs and expected answers",
		Long: `puzzlegrid runs compiled-in puzzle solvers against inputs listed in
manifest files (.hcl, .toml, .yaml) and checks the answers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(deps.Stdin)
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: CodeUsage, Message: err.Error()}
	})

	root.AddCommand(newRunCommand(deps))
	root.AddCommand(newListCommand(deps))
	root.AddCommand(newBagsCommand())
	return root
}

// Execute runs the command tree with args. Every returned error is an
// *ExitError; errors raised by cobra itself, such as an unknown command or a
// wrong argument count, are usage errors.
func Execute(ctx context.Context, args []string, deps Deps) error {
	slog.Debug("CLI parser started.", "args", args)
	root := NewRootCommand(deps)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: CodeUsage, Message: err.Error()}
}
