package irap

import "testing"

func TestGrid_Accessors(t *testing.T) {
	grid := Grid{
		Width:   intPtr(3),
		Height:  intPtr(2),
		Samples: []float64{1, 2, 3, NoDataValue, 5, 6},
	}

	if grid.Z(2, 0) != 3 || grid.Z(0, 1) != NoDataValue {
		t.Errorf("unexpected Z values")
	}
	if grid.X(2, 10) != 20 {
		t.Errorf("expected X(2) = 20, got %v", grid.X(2, 10))
	}
	// row 0 is the top row
	if grid.Y(0, 10) != 10 || grid.Y(1, 10) != 0 {
		t.Errorf("expected Y(0) = 10 and Y(1) = 0, got %v and %v", grid.Y(0, 10), grid.Y(1, 10))
	}
	if grid.NoDataCount() != 1 {
		t.Errorf("expected 1 no-data sample, got %d", grid.NoDataCount())
	}

	f := grid.Float32()
	if len(f) != 6 || f[4] != 5 {
		t.Errorf("unexpected float32 samples %v", f)
	}
}

func TestGrid_DimsAbsent(t *testing.T) {
	grid := Grid{Width: intPtr(-2)}

	if w, h := grid.Dims(); w != 0 || h != 0 {
		t.Errorf("expected 0x0, got %dx%d", w, h)
	}
}
