package contour

import "math"

// Levels returns every multiple of interval in [min, max]
func Levels(min, max, interval float64) []float64 {
	if interval <= 0 || min > max || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}

	levels := []float64{}
	for i := math.Ceil(min / interval); i*interval <= max; i++ {
		levels = append(levels, i*interval)
	}

	return levels
}
