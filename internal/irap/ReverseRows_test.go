package irap

import (
	"reflect"
	"testing"
)

func sequence(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

func TestReverseRows(t *testing.T) {
	samples := sequence(6)
	ReverseRows(samples, 2, 3)

	want := []float64{4, 5, 2, 3, 0, 1}
	if !reflect.DeepEqual(samples, want) {
		t.Errorf("expected %v, got %v", want, samples)
	}
}

func TestReverseRows_Twice(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 4}, {4, 3}, {5, 5}, {1, 8}, {8, 1}} {
		width, height := dims[0], dims[1]
		samples := sequence(width * height)

		ReverseRows(samples, width, height)
		ReverseRows(samples, width, height)

		if !reflect.DeepEqual(samples, sequence(width*height)) {
			t.Errorf("%dx%d: double reversal changed order: %v", width, height, samples)
		}
	}
}

func TestReverseRows_OddMiddleRow(t *testing.T) {
	width, height := 4, 5
	samples := sequence(width * height)
	ReverseRows(samples, width, height)

	middle := height / 2
	for w := 0; w < width; w++ {
		i := middle*width + w
		if samples[i] != float64(i) {
			t.Errorf("middle row moved at %d: got %v", i, samples[i])
		}
	}
}

func TestReverseRows_Truncated(t *testing.T) {
	// 3x4 grid with only 7 samples: two full rows are reversed, the rest stays
	samples := sequence(7)
	ReverseRows(samples, 3, 4)

	want := []float64{3, 4, 5, 0, 1, 2, 6}
	if !reflect.DeepEqual(samples, want) {
		t.Errorf("expected %v, got %v", want, samples)
	}
}

func TestReverseRows_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {2, -4}} {
		samples := sequence(6)
		ReverseRows(samples, dims[0], dims[1])

		if !reflect.DeepEqual(samples, sequence(6)) {
			t.Errorf("%v: expected samples untouched, got %v", dims, samples)
		}
	}
}

func TestReverseRows_WiderThanData(t *testing.T) {
	samples := sequence(3)
	ReverseRows(samples, 10, 10)

	if !reflect.DeepEqual(samples, sequence(3)) {
		t.Errorf("expected samples untouched, got %v", samples)
	}
}
