package cli

import (
	"github.com/spf13/cobra"
)

// newApplyCmd creates the apply command, which runs a single transform
// on an input file and writes the result.
func newApplyCmd() *cobra.Command {
	var s step

	cmd := &cobra.Command{
		Use:   "apply <input> <output>",
		Short: "Apply one transform to an image file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			img, err := decodeImage(args[0])
			if err != nil {
				return err
			}
			logger.Debug("decoded", "file", args[0], "width", img.Width(), "height", img.Height())

			out, err := runStep(img, s)
			if err != nil {
				return err
			}
			if err := encodeImage(args[1], out); err != nil {
				return err
			}
			logger.Info("wrote", "file", args[1], "op", s.Op)
			return nil
		},
	}

	cmd.Flags().StringVar(&s.Op, "op", "", "transform to apply: grayscale|red|mirror|negative|posterize|denoise|weather|rotate|boxpaint|quantize|clip")
	cmd.Flags().Float64Var(&s.Degrees, "degrees", 0, "rotation angle for --op rotate")
	cmd.Flags().IntVar(&s.Size, "size", 0, "block size for --op boxpaint")
	cmd.Flags().IntVar(&s.Colors, "colors", 0, "palette size for --op quantize")
	cmd.Flags().StringVar(&s.Box, "box", "", "clip region left,top,right,bottom for --op clip")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}
