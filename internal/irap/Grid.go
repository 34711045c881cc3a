package irap

// NoDataValue marks a grid cell without a measurement
const NoDataValue = 9999900

// Grid represents a decoded IRAP ASCII grid.
//
// Samples are row-major. Row 0 is the row that came last in the file, so the
// grid is ready for top-down display. If Width or Height is nil the samples
// are left in file order.
type Grid struct {
	Width, Height      *int
	MinValue, MaxValue float64
	Samples            []float64
}

// IsNoData reports whether v is the no-data sentinel
func IsNoData(v float64) bool {
	return v == NoDataValue
}

// HasRange reports whether at least one real sample was seen
func (grid Grid) HasRange() bool {
	return grid.MinValue <= grid.MaxValue
}

// Dims returns the dimensions of the grid. Absent or negative dimensions are 0.
func (grid Grid) Dims() (c, r uint) {
	if grid.Width != nil && *grid.Width > 0 {
		c = uint(*grid.Width)
	}
	if grid.Height != nil && *grid.Height > 0 {
		r = uint(*grid.Height)
	}
	return c, r
}

// Z returns the value of a grid value at (c, r).
// It will panic if c or r are out of bounds for the grid.
func (grid Grid) Z(c, r uint) float64 {
	w, _ := grid.Dims()
	return grid.Samples[r*w+c]
}

// X returns the coordinate for the column at the index c.
func (grid Grid) X(c uint, cellSize float64) float64 {
	return float64(c) * cellSize
}

// Y returns the coordinate for the row at the index r. Row 0 is the top row.
func (grid Grid) Y(r uint, cellSize float64) float64 {
	_, h := grid.Dims()
	return float64(h-1-r) * cellSize
}

// NoDataCount returns how many samples hold the no-data sentinel
func (grid Grid) NoDataCount() int {
	count := 0
	for _, v := range grid.Samples {
		if IsNoData(v) {
			count++
		}
	}
	return count
}

// Float32 returns the samples narrowed to float32, the layout GPU textures expect
func (grid Grid) Float32() []float32 {
	out := make([]float32, len(grid.Samples))
	for i, v := range grid.Samples {
		out[i] = float32(v)
	}
	return out
}
