package terrainrgb

import (
	"image/color"
	"math"
)

/*
	Mapbox Terrain-RGB encodes a height as

	height = -10000 + ((R * 256 * 256 + G * 256 + B) * 0.1)

	With x = R * 256^2 + G * 256^1 + B * 256^0 this solves to
	x = 10 * height + 100000
	and R, G, B are the digits of x written in base 256.
*/

// MaxX is the largest value three bytes can hold
var MaxX = int64(math.Pow(256, 3) - 1)

// MinHeight and MaxHeight bound what Terrain-RGB can represent
var (
	MinHeight = RgbToHeight(color.RGBA{0, 0, 0, 255})
	MaxHeight = RgbToHeight(color.RGBA{255, 255, 255, 255})
)

// HeightToRgb calculates rgb values from height. Heights outside of
// MinHeight..MaxHeight are clamped.
func HeightToRgb(height float64) color.RGBA {
	// clamp before converting, huge floats don't fit an int64
	f := math.Round(10*height + 100000)
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	if f > float64(MaxX) {
		f = float64(MaxX)
	}
	x := int64(f)

	b := uint8(x % 256)
	x = x / 256

	g := uint8(x % 256)
	x = x / 256

	r := uint8(x % 256)

	return color.RGBA{
		R: r,
		G: g,
		B: b,
		A: 255,
	}
}

// RgbToHeight calculates height from given rgb values
func RgbToHeight(c color.RGBA) float64 {
	x := int64(c.R)*256*256 + int64(c.G)*256 + int64(c.B)

	return -10000.0 + float64(x)*0.1
}
