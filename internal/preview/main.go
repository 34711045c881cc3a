package preview

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path"
	"time"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/gruppe-adler/irap-utils/internal/validate"
	"github.com/nfnt/resize"
)

var sizes = []uint{128, 256, 512, 1024}

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to IRAP ASCII grid (optionally gzipped)")

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

	timer = time.Now()
	fmt.Println("▶️  Colorizing grid")
	previewImage := Colorize(grid, DefaultPalette)
	if err := saveImage(path.Join(*outputPtr, "preview.png"), previewImage); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Wrote full size preview image in", time.Since(timer).String())

	for _, size := range sizes {
		timer = time.Now()
		fmt.Printf("▶️  Building x%d image\n", size)

		img := scale(previewImage, size)
		if err := saveImage(path.Join(*outputPtr, fmt.Sprintf("preview_%d.png", size)), img); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("✔️  Built x%d in %s\n", size, time.Since(timer).String())
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}

// scale resizes img to the given width, keeping the aspect ratio
func scale(img image.Image, width uint) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return img
	}

	factor := float64(width) / float64(bounds.Dx())
	height := uint(float64(bounds.Dy())*factor + 0.5)
	if height == 0 {
		height = 1
	}

	return resize.Resize(width, height, img, resize.MitchellNetravali)
}

func saveImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
