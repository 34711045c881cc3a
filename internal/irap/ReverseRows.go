package irap

// ReverseRows flips the row order of samples in place.
// The reversal only covers full rows that actually exist, so truncated data
// never leads to out of range access. The middle row of an odd height stays put.
func ReverseRows(samples []float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	rows := len(samples) / width
	if height < rows {
		rows = height
	}

	for h := 0; h < rows/2; h++ {
		top := samples[h*width : (h+1)*width]
		bottom := samples[(rows-1-h)*width : (rows-h)*width]
		for w := 0; w < width; w++ {
			top[w], bottom[w] = bottom[w], top[w]
		}
	}
}
