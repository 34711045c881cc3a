package irap

import "math"

// ReadSamples reads every remaining token as a sample. The no-data sentinel
// is kept in values but does not count towards min and max. NaN samples never
// win a comparison, so they are kept without touching the range either.
//
// Without any real sample min stays math.MaxFloat64 and max stays
// -math.MaxFloat64.
func ReadSamples(s *Scanner) (values []float64, min, max float64) {
	min = math.MaxFloat64
	max = -math.MaxFloat64

	for {
		token, ok := s.Next()
		if !ok {
			break
		}

		value := parseFloat(token)
		if !IsNoData(value) {
			if value > max {
				max = value
			}
			if value < min {
				min = value
			}
		}

		values = append(values, value)
	}

	if values == nil {
		values = []float64{}
	}

	return values, min, max
}
