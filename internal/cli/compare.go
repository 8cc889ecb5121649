package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-raster"
)

// newCompareCmd creates the compare command, which prints the cosine
// similarity of two equally-sized images.
func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print the cosine similarity of two images",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := decodeImage(args[0])
			if err != nil {
				return err
			}
			b, err := decodeImage(args[1])
			if err != nil {
				return err
			}
			score, err := raster.CosineSimilarity(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", score)
			return nil
		},
	}
}
