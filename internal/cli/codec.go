package cli

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-raster"
)

// decodeImage reads an image file in any registered format (PNG, JPEG,
// GIF, BMP, TIFF) into a raster.Image.
func decodeImage(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	img := raster.FromImage(src)
	if img == nil {
		return nil, fmt.Errorf("decode %s: empty %s image", path, format)
	}
	return img, nil
}

// encodeImage writes img to path, choosing the codec from the file
// extension.
func encodeImage(path string, img *raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	rgba := img.ToImage()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, rgba)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, rgba, nil)
	case ".gif":
		err = gif.Encode(f, rgba, nil)
	case ".bmp":
		err = bmp.Encode(f, rgba)
	case ".tif", ".tiff":
		err = tiff.Encode(f, rgba, nil)
	default:
		return fmt.Errorf("encode %s: unsupported extension", path)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
