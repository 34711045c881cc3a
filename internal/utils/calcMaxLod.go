package utils

import (
	"math"
)

// TileSizeInPx is the edge length of a raster tile
const TileSizeInPx = 256

// CalcMaxLod calculates the maximum LOD needed to show a grid of w x h cells
// at roughly one cell per pixel. The longer edge decides.
func CalcMaxLod(w, h uint) uint8 {
	edge := w
	if h > edge {
		edge = h
	}

	if edge <= TileSizeInPx {
		return 0
	}

	tilesPerRowCol := math.Ceil(float64(edge) / TileSizeInPx)

	return uint8(math.Ceil(math.Log2(tilesPerRowCol)))
}
