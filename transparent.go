package transparent

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Near-white band treated as background. Both ends are inclusive.
const (
	BandMin = 250
	BandMax = 255
)

// Result is the in-memory outcome of a transformation.
type Result struct {
	// Image holds the filtered pixels with bounds starting at (0, 0).
	Image *image.NRGBA
	// Reference is the pixel sampled at the top-left corner of the input.
	Reference color.NRGBA
	// Transparent counts the pixels whose alpha was cleared.
	Transparent int
}

// ReferenceHex formats the sampled reference color as "#rrggbb".
func (r Result) ReferenceHex() string {
	c := colorful.Color{
		R: float64(r.Reference.R) / 255.0,
		G: float64(r.Reference.G) / 255.0,
		B: float64(r.Reference.B) / 255.0,
	}
	return c.Hex()
}

// IsBackground reports whether the RGB triple falls inside the near-white band.
func IsBackground(r, g, b uint8) bool {
	return r >= BandMin && g >= BandMin && b >= BandMin
}

// Transparentize returns a new image in which every background pixel has
// alpha 0 and every other pixel alpha 255. RGB values are preserved and the
// alpha of the input is ignored. img is not modified.
func Transparentize(img image.Image) (Result, error) {
	if img == nil {
		return Result{}, fmt.Errorf("%w: nil image provided", ErrInvalidImage)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return Result{}, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, width, height)
	}

	// The band is fixed; the reference color is only reported.
	// TODO: decide whether the band should follow the reference color for
	// non-white backgrounds.
	ref := nrgbaAt(img, bounds.Min.X, bounds.Min.Y)

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	cleared := 0

	for y := 0; y < height; y++ {
		row := y * dst.Stride
		for x := 0; x < width; x++ {
			c := nrgbaAt(img, bounds.Min.X+x, bounds.Min.Y+y)

			offset := row + x*4
			dst.Pix[offset+0] = c.R
			dst.Pix[offset+1] = c.G
			dst.Pix[offset+2] = c.B

			if IsBackground(c.R, c.G, c.B) {
				dst.Pix[offset+3] = 0
				cleared++
			} else {
				dst.Pix[offset+3] = 0xff
			}
		}
	}

	return Result{Image: dst, Reference: ref, Transparent: cleared}, nil
}

// nrgbaAt reads the non-premultiplied color at (x, y). NRGBA sources are read
// from Pix directly so pixels with alpha 0 keep their RGB.
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
