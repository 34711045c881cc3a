package irap

import (
	"errors"
	"math"
	"strconv"
)

// Scanner walks the raw text of an IRAP file and hands out numeric runs.
// Its cursor never moves backwards.
type Scanner struct {
	src string
	pos int
}

// NewScanner returns a scanner positioned at the start of src
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

func isNumeric(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '.'
}

// Next returns the next maximal run of digits, '-' and '.' characters.
// Everything else is a separator. ok is false once the input is exhausted.
func (s *Scanner) Next() (token string, ok bool) {
	for s.pos < len(s.src) && !isNumeric(s.src[s.pos]) {
		s.pos++
	}

	start := s.pos
	for s.pos < len(s.src) && isNumeric(s.src[s.pos]) {
		s.pos++
	}

	if start == s.pos {
		return "", false
	}

	return s.src[start:s.pos], true
}

// NextInt reads the next token as an integer. Only the leading integer part
// of the run is used, so "5.0" reads as 5. ok is false if there was no token
// or the run does not start with an integer.
func (s *Scanner) NextInt() (value int, ok bool) {
	token, ok := s.Next()
	if !ok {
		return 0, false
	}

	return parseIntPrefix(token)
}

// NextFloat reads the next token as a float. A missing or malformed token
// yields NaN.
func (s *Scanner) NextFloat() float64 {
	token, ok := s.Next()
	if !ok {
		return math.NaN()
	}

	return parseFloat(token)
}

func parseFloat(token string) float64 {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// out of range values come back as ±Inf or 0
	return f
}

func parseIntPrefix(token string) (int, bool) {
	end := 0
	if end < len(token) && token[end] == '-' {
		end++
	}

	digits := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, false
	}

	i, err := strconv.Atoi(token[:end])
	if err != nil {
		// out of range
		return 0, false
	}

	return i, true
}
