package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vk/puzzlegrid/internal/bagrules"
)

func newBagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bags",
		Short: "Query a file of bag rules directly",
		Long: `Bags parses a file of rules such as
  "light red bags contain 1 bright white bag, 2 muted yellow bags."
and answers reachability and nested count questions about it.
A FILE of "-" reads the rules from standard input.`,
	}
	cmd.AddCommand(newBagsContainsCommand())
	cmd.AddCommand(newBagsContainersCommand())
	cmd.AddCommand(newBagsTotalCommand())
	cmd.AddCommand(newBagsFormatCommand())
	cmd.AddCommand(newBagsCheckCommand())
	return cmd
}

func loadRules(cmd *cobra.Command, path string) (*bagrules.Graph, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, failure(fmt.Errorf("reading rules: %w", err))
	}
	g, err := bagrules.Parse(string(data))
	if err != nil {
		return nil, failure(err)
	}
	return g, nil
}

// bagFlag parses a two-word bag flag value.
func bagFlag(name, value string) (bagrules.BagSpec, error) {
	b, err := bagrules.ParseBagSpec(value)
	if err != nil {
		return bagrules.BagSpec{}, &ExitError{Code: CodeUsage, Message: fmt.Sprintf("--%s: %v", name, err)}
	}
	return b, nil
}

// warnUnknown notes on stderr that a queried bag never appears in the rules,
// since every query then answers with its empty result.
func warnUnknown(cmd *cobra.Command, g *bagrules.Graph, flag string, b bagrules.BagSpec) {
	if !g.Has(b) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: --%s bag %q does not appear in the rules\n", flag, b)
	}
}

func newBagsContainsCommand() *cobra.Command {
	var root, needle string
	cmd := &cobra.Command{
		Use:   "contains FILE",
		Short: "Print whether the root bag eventually holds the needle bag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bagFlag("root", root)
			if err != nil {
				return err
			}
			n, err := bagFlag("needle", needle)
			if err != nil {
				return err
			}
			g, err := loadRules(cmd, args[0])
			if err != nil {
				return err
			}
			warnUnknown(cmd, g, "root", r)
			warnUnknown(cmd, g, "needle", n)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Contains(r, n))
			return err
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "outer bag, e.g. \"light red\"")
	cmd.Flags().StringVar(&needle, "needle", "shiny gold", "bag to look for")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}

func newBagsContainersCommand() *cobra.Command {
	var needle string
	cmd := &cobra.Command{
		Use:   "containers FILE",
		Short: "List every bag that eventually holds the needle bag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bagFlag("needle", needle)
			if err != nil {
				return err
			}
			g, err := loadRules(cmd, args[0])
			if err != nil {
				return err
			}
			warnUnknown(cmd, g, "needle", n)
			out := cmd.OutOrStdout()
			for _, b := range g.Containers(n) {
				if _, err := fmt.Fprintln(out, b); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&needle, "needle", "shiny gold", "bag to look for")
	return cmd
}

func newBagsTotalCommand() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "total FILE",
		Short: "Print how many bags the root bag must hold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bagFlag("root", root)
			if err != nil {
				return err
			}
			g, err := loadRules(cmd, args[0])
			if err != nil {
				return err
			}
			warnUnknown(cmd, g, "root", r)
			total, err := g.TotalContained(r)
			if err != nil {
				return failure(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
			return err
		},
	}
	cmd.Flags().StringVar(&root, "root", "shiny gold", "outer bag")
	return cmd
}

func newBagsFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format FILE",
		Short: "Print the rules back in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadRules(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), g.String())
			return err
		},
	}
}

func newBagsCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Verify the rules parse and contain no cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadRules(cmd, args[0])
			if err != nil {
				return err
			}
			if err := g.DetectCycles(); err != nil {
				return failure(err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d rules, %d bags\n", len(g.Keys()), g.Len())
			return err
		},
	}
}
