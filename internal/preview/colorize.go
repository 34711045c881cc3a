package preview

import (
	"image"
	"image/color"
	"math"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"gonum.org/v1/plot/palette"
)

const paletteSize = 256

// DefaultPalette is the colour ramp used for previews, low values first
var DefaultPalette = palette.Heat(paletteSize, 1)

// Colorize maps every cell of grid onto colors, scaled between the grid's
// MinValue and MaxValue. No-data and NaN cells stay transparent.
func Colorize(grid irap.Grid, p palette.Palette) *image.RGBA {
	w, h := grid.Dims()
	colors := p.Colors()

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	if len(colors) == 0 || !grid.HasRange() {
		return img
	}

	span := grid.MaxValue - grid.MinValue

	for row := uint(0); row < h; row++ {
		for col := uint(0); col < w; col++ {
			z := grid.Z(col, row)
			if irap.IsNoData(z) || math.IsNaN(z) {
				continue
			}

			i := 0
			if span > 0 {
				i = int((z - grid.MinValue) / span * float64(len(colors)-1))
			}
			if i < 0 {
				i = 0
			}
			if i >= len(colors) {
				i = len(colors) - 1
			}

			img.Set(int(col), int(row), color.RGBAModel.Convert(colors[i]))
		}
	}

	return img
}
