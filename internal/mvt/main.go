package mvt

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/gruppe-adler/irap-utils/internal/mbtiles"
	"github.com/gruppe-adler/irap-utils/internal/metajson"
	"github.com/gruppe-adler/irap-utils/internal/tilejson"
	"github.com/gruppe-adler/irap-utils/internal/utils"
	"github.com/gruppe-adler/irap-utils/internal/validate"
	"github.com/paulmach/orb/geojson"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	collections := make(map[string]*geojson.FeatureCollection)
	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to IRAP ASCII grid (optionally gzipped)")
	cellSizePtr := flagSet.Float64("cellsize", 1, "Edge length of one grid cell")
	intervalPtr := flagSet.Float64("interval", 10, "Elevation difference between two contour lines")
	offsetPtr := flagSet.Float64("offset", 0, "Elevation offset added to every sample")
	mbTilesPtr := flagSet.String("mbtiles", "", "Write tiles into this .mbtiles file instead of the output directory")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if *cellSizePtr <= 0 || *intervalPtr <= 0 {
		log.Fatal("cellsize and interval must be greater than 0")
	}

	if err := validate.OutputDirectory(*outputPtr); err != nil {
		log.Fatal(err)
	}

	if err := validate.IrapFile(*inputPtr); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Validated input file")

	// load grid
	timer = time.Now()
	fmt.Println("▶️  Loading IRAP grid")
	grid, err := irap.Read(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}
	if err := irap.Check(grid); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Loaded IRAP grid in", time.Since(timer).String())

	// contour lines
	timer = time.Now()
	fmt.Println("▶️  Building contour lines")
	buildContours(grid, *cellSizePtr, *intervalPtr, *offsetPtr, collections)
	fmt.Println("✔️  Built contour lines in", time.Since(timer).String())

	// build mounts
	timer = time.Now()
	fmt.Println("▶️  Building mounts")
	buildMounts(grid, *cellSizePtr, *offsetPtr, collections)
	fmt.Println("✔️  Built mounts in", time.Since(timer).String())

	layerNames := sortedLayerNames(collections)
	fmt.Printf("ℹ️  Built the following layers (%d): %s\n", len(layerNames), strings.Join(layerNames, ", "))

	// write GeoJSONs
	timer = time.Now()
	fmt.Println("▶️  Writing GeoJSONs")
	if err := writeGeoJSONs(path.Join(*outputPtr, "geojson"), collections); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Wrote GeoJSONs in", time.Since(timer).String())

	w, h := grid.Dims()
	maxLod := utils.CalcMaxLod(w, h)
	fmt.Println("ℹ️  Calculated max lod:", maxLod)

	// build mvts
	timer = time.Now()
	fmt.Println("▶️  Building mapbox vector tiles")
	if err := writeVectorTiles(collections, maxLod, worldSize(grid, *cellSizePtr), *outputPtr, *mbTilesPtr, path.Base(*inputPtr)); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Built mapbox vector tiles in", time.Since(timer).String())

	// write meta.json and tile.json
	timer = time.Now()
	fmt.Println("▶️  Creating meta.json and tile.json")
	meta := metajson.FromGrid(path.Base(*inputPtr), grid)
	meta.ElevationOffset = *offsetPtr
	meta.CellSize = *cellSizePtr
	if err := metajson.Write(*outputPtr, meta); err != nil {
		log.Fatal(err)
	}
	if err := tilejson.Write(*outputPtr, maxLod, meta, "Mapbox Vector", layerNames); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created meta.json and tile.json in", time.Since(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}

// worldSize is the edge length of the square covering the whole grid
func worldSize(grid irap.Grid, cellSize float64) float64 {
	w, h := grid.Dims()
	edge := w
	if h > edge {
		edge = h
	}
	return float64(edge) * cellSize
}

func sortedLayerNames(collections map[string]*geojson.FeatureCollection) []string {
	layerNames := make([]string, 0, len(collections))
	for layerName := range collections {
		layerNames = append(layerNames, layerName)
	}
	sort.Strings(layerNames)
	return layerNames
}

// writeVectorTiles builds the tiles either below outputDirectory or, if
// mbTilesPath is set, into that mbtiles file. The mbtiles file is always
// closed before returning.
func writeVectorTiles(collections map[string]*geojson.FeatureCollection, maxLod uint8, worldSize float64, outputDirectory, mbTilesPath, name string) (err error) {
	var writer utils.TileWriter = utils.DirectoryWriter{Root: outputDirectory, Extension: "pbf"}
	if mbTilesPath != "" {
		mbt, openErr := mbtiles.Open(mbTilesPath, name, "pbf")
		if openErr != nil {
			return openErr
		}
		defer func() {
			if closeErr := mbt.Close(); err == nil {
				err = closeErr
			}
		}()
		writer = mbt
	}

	return buildVectorTiles(writer, collections, maxLod, worldSize)
}
