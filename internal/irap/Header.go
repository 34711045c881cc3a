package irap

const (
	headerFloatsBeforeWidth = 6
	headerFloatsAfterWidth  = 10
)

// Header holds the two header fields that are kept, nil if absent
type Header struct {
	Width, Height *int
}

// ReadHeader consumes the fixed 19 token header:
//
//	int, int (height), 6 floats, int (width), 10 floats
//
// Tokens are consumed even if the input runs out early.
func ReadHeader(s *Scanner) Header {
	var header Header

	s.NextInt()
	header.Height = optionalInt(s.NextInt())

	for i := 0; i < headerFloatsBeforeWidth; i++ {
		s.NextFloat()
	}

	header.Width = optionalInt(s.NextInt())

	for i := 0; i < headerFloatsAfterWidth; i++ {
		s.NextFloat()
	}

	return header
}

func optionalInt(i int, ok bool) *int {
	if !ok {
		return nil
	}
	return &i
}
