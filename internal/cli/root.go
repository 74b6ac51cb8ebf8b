// Package cli implements the xdiagram command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the root xdiagram command. Log messages are
// written to logw.
func NewRootCommand(logw io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "xdiagram",
		Short:        "xdiagram lays out shapes described in scene files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logw, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())

	return root
}

// Execute runs the xdiagram command line with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}
