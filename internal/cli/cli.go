// Package cli implements the rastertool command-line interface.
//
// rastertool is a thin presentation layer over the raster package: it
// decodes an image file, applies one transform (apply) or an ordered
// recipe of transforms (pipeline), and encodes the result. It also
// exposes the image analyses (compare, info) and green-screen
// compositing.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the rastertool CLI and returns an error if any command
// fails. It is the entry point used by the main package.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "rastertool",
		Short:        "rastertool applies pixel-level transforms and analyses to image files",
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

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newApplyCmd())
	root.AddCommand(newPipelineCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newGreenScreenCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(context.Background())
}
