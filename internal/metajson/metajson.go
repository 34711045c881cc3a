package metajson

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/gruppe-adler/irap-utils/internal/irap"
)

// MetaJSON describes a decoded grid for consumers of the generated tiles
type MetaJSON struct {
	Name            string   `json:"name"`
	Width           *int     `json:"width"`
	Height          *int     `json:"height"`
	MinValue        *float64 `json:"minValue"`
	MaxValue        *float64 `json:"maxValue"`
	NoDataValue     float64  `json:"noDataValue"`
	NoDataCount     int      `json:"noDataCount"`
	SampleCount     int      `json:"sampleCount"`
	ElevationOffset float64  `json:"elevationOffset"`
	CellSize        float64  `json:"cellSize,omitempty"`
}

// FromGrid builds the meta data of grid. The value range is left out if the
// grid has no real samples.
func FromGrid(name string, grid irap.Grid) MetaJSON {
	meta := MetaJSON{
		Name:        name,
		Width:       grid.Width,
		Height:      grid.Height,
		NoDataValue: irap.NoDataValue,
		NoDataCount: grid.NoDataCount(),
		SampleCount: len(grid.Samples),
	}

	if grid.HasRange() {
		min, max := grid.MinValue, grid.MaxValue
		meta.MinValue = &min
		meta.MaxValue = &max
	}

	return meta
}

// Marshal returns the indented JSON form of meta
func Marshal(meta MetaJSON) ([]byte, error) {
	return json.MarshalIndent(meta, "", "    ")
}

// Write meta.json into outputDirectory
func Write(outputDirectory string, meta MetaJSON) error {
	bytes, err := Marshal(meta)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path.Join(outputDirectory, "meta.json"), bytes, 0644)
}

// Read meta.json from given path
func Read(metaJSONPath string) (MetaJSON, error) {
	var val MetaJSON

	jsonFile, err := os.Open(metaJSONPath)
	if err != nil {
		return val, err
	}
	defer jsonFile.Close()

	byteValue, err := ioutil.ReadAll(jsonFile)
	if err != nil {
		return val, err
	}

	err = json.Unmarshal(byteValue, &val)

	return val, err
}
