package irap

import (
	"compress/gzip"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// Decode reads everything from reader and parses it
func Decode(reader io.Reader) (Grid, error) {
	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return Grid{}, err
	}

	return ParseBytes(bytes), nil
}

// Read IRAP grid from given path. Paths ending in .gz are decompressed.
func Read(path string) (Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return Grid{}, err
	}
	defer file.Close()

	var reader io.Reader = file

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return Grid{}, err
		}
		defer gz.Close()

		reader = gz
	}

	return Decode(reader)
}
