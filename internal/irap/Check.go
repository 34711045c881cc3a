package irap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for input without a single sample
	ErrEmpty = errors.New("IRAP grid has no samples")
	// ErrMissingDimensions is returned when width or height could not be read
	ErrMissingDimensions = errors.New("IRAP header is missing width or height")
	// ErrBadDimensions is returned for width or height below 1
	ErrBadDimensions = errors.New("IRAP grid dimensions must be greater than 0")
	// ErrSampleCount is returned when the samples don't fill width * height
	ErrSampleCount = errors.New("IRAP sample count doesn't match grid dimensions")
)

// Check rejects grids that decoded without complaint but can't be used as a
// complete raster.
func Check(grid Grid) error {
	if len(grid.Samples) == 0 {
		return ErrEmpty
	}

	if grid.Width == nil || grid.Height == nil {
		return ErrMissingDimensions
	}

	if *grid.Width <= 0 || *grid.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBadDimensions, *grid.Width, *grid.Height)
	}

	// compared by division, width * height may not fit an int
	n := len(grid.Samples)
	if n%*grid.Width != 0 || n / *grid.Width != *grid.Height {
		return fmt.Errorf("%w: expected %dx%d, got %d", ErrSampleCount, *grid.Width, *grid.Height, n)
	}

	return nil
}
