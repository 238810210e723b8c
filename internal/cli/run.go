package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/puzzlegrid/internal/app"
	"github.com/vk/puzzlegrid/internal/runner"
)

type runFlags struct {
	workers   int
	logLevel  string
	logFormat string
	noColor   bool
	only      []string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'. Default: text on a terminal, json otherwise.")
}

func (f *runFlags) config(deps Deps, paths []string) (*app.Config, error) {
	logFormat := strings.ToLower(f.logFormat)
	if logFormat == "" {
		logFormat = app.DefaultLogFormat(deps.Stderr)
	}
	cfg, err := app.NewConfig(app.Config{
		ManifestPaths: paths,
		Only:          f.only,
		LogFormat:     logFormat,
		LogLevel:      strings.ToLower(f.logLevel),
		WorkerCount:   f.workers,
		NoColor:       f.noColor,
	})
	if err != nil {
		return nil, &ExitError{Code: CodeUsage, Message: err.Error()}
	}
	return cfg, nil
}

func newRunCommand(deps Deps) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run MANIFEST_PATH...",
		Short: "Run every puzzle listed in the manifests and check the answers",
		Long: `Run loads every manifest file given (directories are searched recursively
for .hcl, .toml, .yaml and .yml files), runs both parts of each listed
puzzle and prints one line per part. It exits with status 1 when any
answer mismatches or any solver fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(deps, args)
			if err != nil {
				return err
			}
			a := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, deps.Loader, deps.Modules...)
			if err := a.Run(cmd.Context()); err != nil {
				return failure(err)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&flags.workers, "workers", runner.DefaultWorkers, "Number of puzzle parts run concurrently.")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output.")
	cmd.Flags().StringSliceVar(&flags.only, "only", nil, "Comma-separated puzzle ids to run, e.g. 2020/07,2021/11.")
	return cmd
}

func newListCommand(deps Deps) *cobra.Command {
	flags := &runFlags{workers: 1}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the puzzles compiled into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(deps, nil)
			if err != nil {
				return err
			}
			a := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, deps.Loader, deps.Modules...)
			if err := a.List(); err != nil {
				return failure(err)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
