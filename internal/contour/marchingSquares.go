package contour

import (
	"math"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/paulmach/orb"
)

// MarchingSquares calculates the contour lines of grid at the given level.
// Cells touching a no-data or NaN sample are skipped, so lines end at holes.
func MarchingSquares(grid irap.Grid, cellSize float64, level float64) []orb.LineString {
	lines := []orb.LineString{}

	w, h := grid.Dims()
	if w < 2 || h < 2 {
		return lines
	}

	for row := uint(0); row < h-1; row++ {
		for col := uint(0); col < w-1; col++ {
			for _, segment := range calcLinesForColRow(grid, cellSize, col, row, level) {
				lines = addSegment(lines, segment)
			}
		}
	}

	return lines
}

// addSegment stitches segment onto up to two lines it touches
func addSegment(lines []orb.LineString, segment orb.LineString) []orb.LineString {
	combined := segment
	first := -1

	for j := 0; j < len(lines); j++ {
		joined, ok := joinLines(combined, lines[j])
		if !ok {
			continue
		}

		combined = joined

		if first == -1 {
			first = j
			lines[j] = combined
			continue
		}

		// second match closes the gap between two lines
		lines[first] = combined
		lines[j] = lines[len(lines)-1]
		lines[len(lines)-1] = nil
		lines = lines[:len(lines)-1]
		break
	}

	if first == -1 {
		lines = append(lines, segment)
	}

	return lines
}

func calcLinesForColRow(grid irap.Grid, cellSize float64, col uint, row uint, level float64) []orb.LineString {
	tlHeight := grid.Z(col, row)
	trHeight := grid.Z(col+1, row)
	brHeight := grid.Z(col+1, row+1)
	blHeight := grid.Z(col, row+1)

	for _, z := range []float64{tlHeight, trHeight, brHeight, blHeight} {
		if irap.IsNoData(z) || math.IsNaN(z) {
			return nil
		}
	}

	leftX := grid.X(col, cellSize)
	rightX := grid.X(col+1, cellSize)
	bottomY := grid.Y(row+1, cellSize)
	topY := grid.Y(row, cellSize)

	// find MS "case"
	index := uint(0)
	if tlHeight > level {
		index = index | 8
	}
	if trHeight > level {
		index = index | 4
	}
	if brHeight > level {
		index = index | 2
	}
	if blHeight > level {
		index = index | 1
	}

	top := func() orb.Point {
		return orb.Point{interpolate(leftX, tlHeight, rightX, trHeight, level), topY}
	}
	left := func() orb.Point {
		return orb.Point{leftX, interpolate(bottomY, blHeight, topY, tlHeight, level)}
	}
	bottom := func() orb.Point {
		return orb.Point{interpolate(leftX, blHeight, rightX, brHeight, level), bottomY}
	}
	right := func() orb.Point {
		return orb.Point{rightX, interpolate(bottomY, brHeight, topY, trHeight, level)}
	}

	switch index {
	case 1, 14:
		return []orb.LineString{{bottom(), left()}}
	case 2, 13:
		return []orb.LineString{{right(), bottom()}}
	case 3, 12:
		return []orb.LineString{{right(), left()}}
	case 4, 11:
		return []orb.LineString{{top(), right()}}
	case 5:
		// saddle
		return []orb.LineString{{left(), top()}, {bottom(), right()}}
	case 6, 9:
		return []orb.LineString{{top(), bottom()}}
	case 7, 8:
		return []orb.LineString{{left(), top()}}
	case 10:
		// saddle
		return []orb.LineString{{left(), bottom()}, {top(), right()}}
	}

	// 0 and 15: all corners on one side
	return nil
}

func interpolate(c0, h0, c1, h1, level float64) float64 {
	return (c0*(h1-level) + c1*(level-h0)) / (h1 - h0)
}

// joinLines returns l1 and l2 stitched together if they share an end point
func joinLines(l1 orb.LineString, l2 orb.LineString) (orb.LineString, bool) {
	switch {
	case l1[len(l1)-1].Equal(l2[0]):
		return stitchLines(l1, l2), true
	case l2[len(l2)-1].Equal(l1[0]):
		return stitchLines(l2, l1), true
	case l1[len(l1)-1].Equal(l2[len(l2)-1]):
		return stitchLines(l1, reversed(l2)), true
	case l1[0].Equal(l2[0]):
		return stitchLines(reversed(l1), l2), true
	}

	return nil, false
}

func reversed(l orb.LineString) orb.LineString {
	r := make(orb.LineString, len(l))
	for i := range l {
		r[len(l)-1-i] = l[i]
	}
	return r
}

// stitchLines returns line1 followed by all points of line2 except its first one
func stitchLines(line1 orb.LineString, line2 orb.LineString) orb.LineString {
	out := make(orb.LineString, 0, len(line1)+len(line2)-1)
	out = append(out, line1...)
	return append(out, line2[1:]...)
}
