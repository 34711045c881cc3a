package tilejson

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path"
	"strings"

	"github.com/gruppe-adler/irap-utils/internal/metajson"
)

// VectorLayer represents a vector layer of a tile.json
type VectorLayer struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// TileJSON represents a tile.json
type TileJSON struct {
	TileJSON     string        `json:"tilejson"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Scheme       string        `json:"scheme"`
	Minzoom      uint8         `json:"minzoom"`
	Maxzoom      uint8         `json:"maxzoom"`
	VectorLayers []VectorLayer `json:"vector_layers,omitempty"`
}

var vectorLayerFields = map[string]map[string]string{
	"mount": {
		"elevation": "Number",
		"text":      "String",
	},
}

func fieldsFor(layerName string) map[string]string {
	if fields, found := vectorLayerFields[layerName]; found {
		return fields
	}
	if strings.HasPrefix(layerName, "contours/") {
		return map[string]string{"elevation": "Number"}
	}
	return map[string]string{}
}

// New builds the tile.json of a tile set
func New(maxLod uint8, meta metajson.MetaJSON, layerName string, vectorLayerNames []string) TileJSON {
	vectorLayers := make([]VectorLayer, len(vectorLayerNames))
	for i, name := range vectorLayerNames {
		vectorLayers[i] = VectorLayer{
			ID:     name,
			Fields: fieldsFor(name),
		}
	}

	return TileJSON{
		TileJSON:     "2.2.0",
		Name:         fmt.Sprintf("%s %s Tiles", meta.Name, layerName),
		Description:  fmt.Sprintf("%s Tiles of the IRAP grid '%s'", layerName, meta.Name),
		Scheme:       "xyz",
		Minzoom:      0,
		Maxzoom:      maxLod,
		VectorLayers: vectorLayers,
	}
}

// Write a tile.json
func Write(outputDirectory string, maxLod uint8, meta metajson.MetaJSON, layerName string, vectorLayerNames []string) error {
	bytes, err := json.MarshalIndent(New(maxLod, meta, layerName, vectorLayerNames), "", "    ")
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path.Join(outputDirectory, "tile.json"), bytes, 0644)
}
