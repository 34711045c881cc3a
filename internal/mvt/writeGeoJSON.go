package mvt

import (
	"io/ioutil"
	"path"
	"strings"

	"github.com/gruppe-adler/irap-utils/internal/utils"
	"github.com/paulmach/orb/geojson"
)

// writeGeoJSONs writes every layer to outputDirectory/<layer>.geojson.
// Slashes in layer names become underscores.
func writeGeoJSONs(outputDirectory string, collections map[string]*geojson.FeatureCollection) error {
	if err := utils.EnsureDirectory(outputDirectory); err != nil {
		return err
	}

	for name, fc := range collections {
		bytes, err := fc.MarshalJSON()
		if err != nil {
			return err
		}

		fileName := strings.ReplaceAll(name, "/", "_") + ".geojson"
		if err := ioutil.WriteFile(path.Join(outputDirectory, fileName), bytes, 0644); err != nil {
			return err
		}
	}

	return nil
}
