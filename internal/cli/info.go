package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInfoCmd creates the info command, which prints image dimensions and
// mean channel values.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Print image dimensions and mean channel values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := decodeImage(args[0])
			if err != nil {
				return err
			}

			w, h := img.Width(), img.Height()
			var sumR, sumG, sumB float64
			for row := range h {
				for col := range w {
					c, err := img.RGBAt(col, row)
					if err != nil {
						return err
					}
					sumR += float64(c.Red())
					sumG += float64(c.Green())
					sumB += float64(c.Blue())
				}
			}
			n := float64(w * h)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %dx%d\n", args[0], w, h)
			fmt.Fprintf(out, "mean r=%.2f g=%.2f b=%.2f\n", sumR/n, sumG/n, sumB/n)
			return nil
		},
	}
}
