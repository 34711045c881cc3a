package terrainrgb

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path"
	"time"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/gruppe-adler/irap-utils/internal/mbtiles"
	"github.com/gruppe-adler/irap-utils/internal/metajson"
	"github.com/gruppe-adler/irap-utils/internal/tilejson"
	"github.com/gruppe-adler/irap-utils/internal/utils"
	"github.com/gruppe-adler/irap-utils/internal/validate"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to IRAP ASCII grid (optionally gzipped)")
	offsetPtr := flagSet.Float64("offset", 0, "Elevation offset added to every sample")
	mbTilesPtr := flagSet.String("mbtiles", "", "Write tiles into this .mbtiles file instead of the output directory")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
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

	// calculating image
	timer = time.Now()
	fmt.Println("▶️  Calculating image from grid")
	img := calculateImage(grid, *offsetPtr)
	fmt.Println("✔️  Calculated image in", time.Since(timer).String())

	w, h := grid.Dims()
	maxLod := utils.CalcMaxLod(w, h)
	fmt.Println("ℹ️  Calculated max lod:", maxLod)

	// build tiles
	timer = time.Now()
	fmt.Println("▶️  Building tiles")
	if err := buildTiles(img, maxLod, *outputPtr, *mbTilesPtr, path.Base(*inputPtr)); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Built Terrain-RGB tiles in", time.Since(timer).String())

	// write meta.json and tile.json
	timer = time.Now()
	fmt.Println("▶️  Creating meta.json and tile.json")
	meta := metajson.FromGrid(path.Base(*inputPtr), grid)
	meta.ElevationOffset = *offsetPtr
	if err := metajson.Write(*outputPtr, meta); err != nil {
		log.Fatal(err)
	}
	if err := tilejson.Write(*outputPtr, maxLod, meta, "Terrain-RGB", []string{}); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created meta.json and tile.json in", time.Since(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}

// buildTiles writes every LOD of img either below outputDirectory or, if
// mbTilesPath is set, into that mbtiles file. The mbtiles file is always
// closed before returning.
func buildTiles(img *image.RGBA, maxLod uint8, outputDirectory, mbTilesPath, name string) (err error) {
	var writer utils.TileWriter = utils.DirectoryWriter{Root: outputDirectory, Extension: "png"}
	if mbTilesPath != "" {
		mbt, openErr := mbtiles.Open(mbTilesPath, name, "png")
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

	for lod := uint8(0); lod <= maxLod; lod++ {
		timer := time.Now()
		if err := utils.BuildTileSet(lod, img, writer); err != nil {
			return err
		}
		fmt.Println("    ✔️  Finished tiles for LOD", lod, "in", time.Since(timer).String())
	}

	return nil
}
