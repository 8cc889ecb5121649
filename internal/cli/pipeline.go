package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-raster"
)

// recipe is the TOML schema for pipeline files: an ordered list of
// [[step]] tables.
type recipe struct {
	Steps []step `toml:"step"`
}

// parseRecipe decodes a TOML pipeline description.
func parseRecipe(data []byte) (recipe, error) {
	var r recipe
	if err := toml.Unmarshal(data, &r); err != nil {
		return recipe{}, fmt.Errorf("parse recipe: %w", err)
	}
	if len(r.Steps) == 0 {
		return recipe{}, fmt.Errorf("parse recipe: no [[step]] tables")
	}
	return r, nil
}

// newPipelineCmd creates the pipeline command, which applies an ordered
// TOML recipe of transforms to an input file.
func newPipelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pipeline <recipe.toml> <input> <output>",
		Short: "Apply a TOML recipe of transforms to an image file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read recipe: %w", err)
			}
			r, err := parseRecipe(data)
			if err != nil {
				return err
			}

			img, err := decodeImage(args[1])
			if err != nil {
				return err
			}
			for i, s := range r.Steps {
				var next *raster.Image
				if next, err = runStep(img, s); err != nil {
					return fmt.Errorf("step %d (%s): %w", i+1, s.Op, err)
				}
				logger.Debug("applied", "step", i+1, "op", s.Op,
					"width", next.Width(), "height", next.Height())
				img = next
			}

			if err := encodeImage(args[2], img); err != nil {
				return err
			}
			logger.Info("wrote", "file", args[2], "steps", len(r.Steps))
			return nil
		},
	}
}
