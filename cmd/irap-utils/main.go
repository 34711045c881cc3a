package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gruppe-adler/irap-utils/internal/info"
	"github.com/gruppe-adler/irap-utils/internal/mvt"
	"github.com/gruppe-adler/irap-utils/internal/preview"
	"github.com/gruppe-adler/irap-utils/internal/terrainrgb"
)

type command struct {
	name        string
	description string
	run         func(*flag.FlagSet)
}

var subCommands []command

func init() {
	subCommands = []command{
		{"info", "Print dimensions and value range of an IRAP grid.", info.Run},
		{"terrainrgb", "Build Terrain-RGB tiles from an IRAP grid.", terrainrgb.Run},
		{"mvt", "Build contour and peak vector tiles from an IRAP grid.", mvt.Run},
		{"preview", "Build coloured preview images of an IRAP grid.", preview.Run},
		{"help", "Print this message.", func(s *flag.FlagSet) { printUsage() }},
	}
}

func printUsage() {
	fmt.Printf("USAGE:\n    %s [SUBCOMMAND] [SUBCOMMAND FLAGS]\n\n", os.Args[0])
	fmt.Print("SUBCOMMANDS: \n")

	for _, c := range subCommands {
		fmt.Printf("%12s    %s\n", c.name, c.description)
	}

	fmt.Printf("\nUse -h as SUBCOMMAND FLAG to print help for each subcommand.\n\n")
}

func main() {

	if len(os.Args) < 2 {
		fmt.Printf("\nERROR: No subcommand was provided.\n\n")
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	for _, c := range subCommands {
		if c.name == cmd {
			set := flag.NewFlagSet(cmd, flag.ExitOnError)
			c.run(set)
			return
		}
	}

	fmt.Printf("\nERROR: Subcommand '%s' was not found.\n\n", cmd)
	printUsage()
	os.Exit(1)
}
