package info

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/gruppe-adler/irap-utils/internal/metajson"
)

func TestPrintSummary(t *testing.T) {
	grid := irap.Parse("-996 2 0 0 0 0 0 0 2 0 0 0 0 0 0 0 0 0 0 1 9999900 -4 8")

	var buf bytes.Buffer
	printSummary(&buf, metajson.FromGrid("grid.irap", grid), irap.Check(grid))
	out := buf.String()

	for _, want := range []string{"grid.irap", "width:    2", "height:   2", "4 (1 no data)", "-4 .. 8", "grid is complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintSummary_Empty(t *testing.T) {
	grid := irap.Parse("")

	var buf bytes.Buffer
	printSummary(&buf, metajson.FromGrid("empty.irap", grid), irap.Check(grid))
	out := buf.String()

	for _, want := range []string{"width:    absent", "range:    no data", irap.ErrEmpty.Error()} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to contain %q, got:\n%s", want, out)
		}
	}
}
