// Package raster implements deterministic pixel-level image transforms
// and analyses over an in-memory ARGB raster.
//
// The entry point is Transformer, which binds to a source Image and
// produces a new Image (or a derived value) per operation. The bound
// source is never mutated.
//
//	img, err := raster.New(640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tr, err := raster.NewTransformer(img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gray := tr.Grayscale()
//	rotated := tr.Rotate(30)
//
// Analyses include the spatial discrete Fourier transform of the
// luminance channel and cosine similarity between two images:
//
//	out := tr.DFT()
//	score, err := raster.CosineSimilarity(imgA, imgB)
//
// Decoding and encoding image files is not this package's concern;
// FromImage and Image.ToImage bridge to the standard image package so
// any registered codec can be used.
package raster
