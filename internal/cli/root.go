package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hexcomb/hexcomb/pkg/buildinfo"
)

// Execute runs the hexcomb CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (generate,
// inspect, variants, completion), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. The passed ctx cancels long-running work when the
// process receives an interrupt.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands registered.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "hexcomb",
		Short:        "Hexcomb generates parametric honeycomb patterns",
		Long:         `Hexcomb is a CLI tool for generating parametric hexagonal tilings as SVG, PNG, or JSON, with all dimensions in millimeters for laser cutting and CNC work.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVariantsCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
