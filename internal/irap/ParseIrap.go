package irap

// Parse decodes the contents of an IRAP ASCII grid file. It never fails:
// missing header fields come back as nil dimensions and malformed samples
// as NaN. Use Check if a hard failure is wanted.
func Parse(src string) Grid {
	s := NewScanner(src)

	header := ReadHeader(s)
	samples, min, max := ReadSamples(s)

	if header.Width != nil && header.Height != nil {
		ReverseRows(samples, *header.Width, *header.Height)
	}

	return Grid{
		Width:    header.Width,
		Height:   header.Height,
		MinValue: min,
		MaxValue: max,
		Samples:  samples,
	}
}

// ParseBytes is Parse for a byte slice
func ParseBytes(src []byte) Grid {
	return Parse(string(src))
}
