package info

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/gruppe-adler/irap-utils/internal/metajson"
	"github.com/gruppe-adler/irap-utils/internal/validate"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet) {
	inputPtr := flagSet.String("in", "", "Path to IRAP ASCII grid (optionally gzipped)")
	jsonPtr := flagSet.Bool("json", false, "Print meta.json to stdout instead of a summary")
	strictPtr := flagSet.Bool("strict", false, "Fail if the grid is incomplete")

	flagSet.Parse(os.Args[2:])

	if *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if err := validate.IrapFile(*inputPtr); err != nil {
		log.Fatal(err)
	}

	grid, err := irap.Read(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	if *strictPtr {
		if err := irap.Check(grid); err != nil {
			log.Fatal(err)
		}
	}

	meta := metajson.FromGrid(path.Base(*inputPtr), grid)

	if *jsonPtr {
		bytes, err := metajson.Marshal(meta)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(bytes))
		return
	}

	printSummary(os.Stdout, meta, irap.Check(grid))
}

func printSummary(w io.Writer, meta metajson.MetaJSON, checkErr error) {
	fmt.Fprintf(w, "ℹ️  %s\n", meta.Name)
	fmt.Fprintf(w, "    width:    %s\n", optionalInt(meta.Width))
	fmt.Fprintf(w, "    height:   %s\n", optionalInt(meta.Height))
	fmt.Fprintf(w, "    samples:  %d (%d no data)\n", meta.SampleCount, meta.NoDataCount)

	if meta.MinValue != nil && meta.MaxValue != nil {
		fmt.Fprintf(w, "    range:    %g .. %g\n", *meta.MinValue, *meta.MaxValue)
	} else {
		fmt.Fprintf(w, "    range:    no data\n")
	}

	if checkErr != nil {
		fmt.Fprintf(w, "⚠️  %s\n", checkErr)
	} else {
		fmt.Fprintf(w, "✔️  grid is complete\n")
	}
}

func optionalInt(i *int) string {
	if i == nil {
		return "absent"
	}
	return fmt.Sprintf("%d", *i)
}
