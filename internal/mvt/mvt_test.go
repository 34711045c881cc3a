package mvt

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/gruppe-adler/irap-utils/internal/mbtiles"
	"github.com/gruppe-adler/irap-utils/internal/utils"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
)

// a 5x5 pyramid on a base of 1, peaking at 40 in the centre
func pyramid() irap.Grid {
	w, h := 5, 5
	return irap.Grid{
		Width:    &w,
		Height:   &h,
		MinValue: 1,
		MaxValue: 40,
		Samples: []float64{
			1, 1, 1, 1, 1,
			1, 20, 20, 20, 1,
			1, 20, 40, 20, 1,
			1, 20, 20, 20, 1,
			1, 1, 1, 1, 1,
		},
	}
}

func TestBuildMounts(t *testing.T) {
	layers := map[string]*geojson.FeatureCollection{}
	buildMounts(pyramid(), 10, 100, layers)

	mounts := layers["mount"]
	if mounts == nil || len(mounts.Features) != 1 {
		t.Fatalf("expected a single mount, got %v", mounts)
	}

	f := mounts.Features[0]
	if p := f.Geometry.(orb.Point); p != (orb.Point{20, 20}) {
		t.Errorf("expected mount at (20, 20), got %v", p)
	}
	if f.Properties["elevation"] != 140.0 || f.Properties["text"] != "140" {
		t.Errorf("unexpected properties %v", f.Properties)
	}
}

func TestBuildMounts_IgnoresHoles(t *testing.T) {
	grid := pyramid()
	grid.Samples[6] = irap.NoDataValue

	layers := map[string]*geojson.FeatureCollection{}
	buildMounts(grid, 1, 0, layers)

	if n := len(layers["mount"].Features); n != 0 {
		t.Errorf("expected no mounts next to a hole, got %d", n)
	}
}

func TestBuildContours(t *testing.T) {
	layers := map[string]*geojson.FeatureCollection{}
	buildContours(pyramid(), 1, 10, 0, layers)

	minor := layers["contours/10"]
	major := layers["contours/50"]
	if minor == nil || major == nil {
		t.Fatalf("expected contours/10 and contours/50 layers, got %v", sortedLayerNames(layers))
	}

	// levels 10, 20 and 30 each give one closed ring, 40 touches no cell
	if len(minor.Features) != 3 {
		t.Errorf("expected 3 contour lines, got %d", len(minor.Features))
	}
	if len(major.Features) != 0 {
		t.Errorf("expected no major contour lines, got %d", len(major.Features))
	}
	for _, f := range minor.Features {
		if _, ok := f.Properties["elevation"].(float64); !ok {
			t.Errorf("expected elevation property, got %v", f.Properties)
		}
	}
}

func TestBuildVectorTiles(t *testing.T) {
	out := t.TempDir()
	layers := map[string]*geojson.FeatureCollection{}
	grid := pyramid()
	buildContours(grid, 1, 10, 0, layers)
	buildMounts(grid, 1, 0, layers)

	if err := buildVectorTiles(utils.DirectoryWriter{Root: out, Extension: "pbf"}, layers, 1, worldSize(grid, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range []string{"0/0/0.pbf", "1/0/0.pbf", "1/0/1.pbf", "1/1/0.pbf", "1/1/1.pbf"} {
		data, err := ioutil.ReadFile(filepath.Join(out, p))
		if err != nil {
			t.Fatalf("missing tile %s: %v", p, err)
		}
		if _, err := mvt.UnmarshalGzipped(data); err != nil {
			t.Errorf("tile %s: %v", p, err)
		}
	}

	data, err := ioutil.ReadFile(filepath.Join(out, "0/0/0.pbf"))
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := mvt.UnmarshalGzipped(data)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, l := range decoded {
		if l.Name == "mount" && len(l.Features) == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the mount layer in the LOD 0 tile")
	}
}

func TestWriteGeoJSONs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "geojson")
	layers := map[string]*geojson.FeatureCollection{}
	buildContours(pyramid(), 1, 10, 0, layers)

	if err := writeGeoJSONs(out, layers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "contours_10.geojson"))
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 3 {
		t.Errorf("expected 3 features, got %d", len(fc.Features))
	}
}

func TestWriteVectorTiles_MBTiles(t *testing.T) {
	layers := map[string]*geojson.FeatureCollection{}
	grid := pyramid()
	buildMounts(grid, 1, 0, layers)

	mbTilesPath := filepath.Join(t.TempDir(), "grid.mbtiles")
	if err := writeVectorTiles(layers, 0, worldSize(grid, 1), t.TempDir(), mbTilesPath, "grid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the file has been closed and can be opened again
	mbt, err := mbtiles.Open(mbTilesPath, "grid", "pbf")
	if err != nil {
		t.Fatal(err)
	}
	defer mbt.Close()

	data, err := mbt.ReadTile(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := mvt.UnmarshalGzipped(data); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
