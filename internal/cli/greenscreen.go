package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-raster"
)

// parseHexColor parses "RRGGBB" (with optional leading '#') into an
// opaque raster.Color.
func parseHexColor(spec string) (raster.Color, error) {
	s := strings.TrimPrefix(spec, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("color %q: want RRGGBB", spec)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", spec, err)
	}
	return raster.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// newGreenScreenCmd creates the greenscreen command, which replaces the
// largest region of a given screen color with a background image.
func newGreenScreenCmd() *cobra.Command {
	var colorSpec string

	cmd := &cobra.Command{
		Use:   "greenscreen <input> <background> <output>",
		Short: "Replace the largest region of a screen color with a background image",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			screen, err := parseHexColor(colorSpec)
			if err != nil {
				return err
			}
			img, err := decodeImage(args[0])
			if err != nil {
				return err
			}
			background, err := decodeImage(args[1])
			if err != nil {
				return err
			}
			tr, err := raster.NewTransformer(img)
			if err != nil {
				return err
			}
			out, err := tr.GreenScreen(screen, background)
			if err != nil {
				return err
			}
			if err := encodeImage(args[2], out); err != nil {
				return err
			}
			logger.Info("wrote", "file", args[2], "screen", screen.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&colorSpec, "color", "00FF00", "screen color as RRGGBB hex")
	return cmd
}
