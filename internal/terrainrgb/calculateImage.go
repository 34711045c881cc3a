package terrainrgb

import (
	"image"
	"image/color"
	"math"

	"github.com/gruppe-adler/irap-utils/internal/irap"
)

// calculateImage encodes every cell of grid as a Terrain-RGB pixel.
// No-data and NaN cells stay fully transparent.
func calculateImage(grid irap.Grid, elevationOffset float64) *image.RGBA {
	w, h := grid.Dims()

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))

	for row := uint(0); row < h; row++ {
		for col := uint(0); col < w; col++ {
			z := grid.Z(col, row)
			if irap.IsNoData(z) || math.IsNaN(z) {
				img.SetRGBA(int(col), int(row), color.RGBA{})
				continue
			}

			img.SetRGBA(int(col), int(row), HeightToRgb(z+elevationOffset))
		}
	}

	return img
}
