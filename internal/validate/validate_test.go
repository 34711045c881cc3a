package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIrapFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"grid.irap", false},
		{"GRID.GRD", false},
		{"grid.txt.gz", false},
		{"grid.irap.gz", false},
		{"grid.irapgrid", false},
		{"grid.asc.gz", false},
		{"grid.png", true},
		{"grid.gz", true},
	}

	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		if err := os.WriteFile(path, []byte("1"), 0o644); err != nil {
			t.Fatal(err)
		}

		err := IrapFile(path)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: expected error=%v, got %v", tt.name, tt.wantErr, err)
		}
	}

	if err := IrapFile(filepath.Join(dir, "missing.irap")); err == nil {
		t.Errorf("expected error for missing file")
	}
	if err := IrapFile(dir); err == nil {
		t.Errorf("expected error for directory")
	}
}

func TestOutputDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := OutputDirectory(dir); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := OutputDirectory(filepath.Join(dir, "missing")); err == nil {
		t.Errorf("expected error for missing directory")
	}
}
