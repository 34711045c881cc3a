package mvt

import (
	"fmt"
	"math"
	"sort"

	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func isHole(z float64) bool {
	return irap.IsNoData(z) || math.IsNaN(z)
}

func buildMounts(grid irap.Grid, cellSize, elevOffset float64, layers map[string]*geojson.FeatureCollection) {

	mounts := geojson.NewFeatureCollection()

	w, h := grid.Dims()

	// for all cells (except edges)
	for row := uint(1); row+1 < h; row++ {
		for col := uint(1); col+1 < w; col++ {
			elevation := grid.Z(col, row)
			if isHole(elevation) {
				continue
			}

			if !isPeak(grid, col, row, elevation) {
				continue
			}

			feature := geojson.NewFeature(orb.Point{grid.X(col, cellSize), grid.Y(row, cellSize)})
			feature.Properties["elevation"] = elevation + elevOffset
			feature.Properties["text"] = fmt.Sprintf("%.0f", math.Round(elevation+elevOffset))

			mounts.Append(feature)
		}
	}

	sort.SliceStable(mounts.Features, func(i, j int) bool {
		return mounts.Features[i].Properties["elevation"].(float64) < mounts.Features[j].Properties["elevation"].(float64)
	})

	layers["mount"] = mounts
}

// isPeak reports whether all eight neighbours are strictly lower. Cells next
// to a hole in the data are never peaks.
func isPeak(grid irap.Grid, col, row uint, elevation float64) bool {
	for compareRow := row - 1; compareRow <= row+1; compareRow++ {
		for compareCol := col - 1; compareCol <= col+1; compareCol++ {
			if row == compareRow && col == compareCol {
				continue
			}

			compareElev := grid.Z(compareCol, compareRow)
			if isHole(compareElev) || compareElev >= elevation {
				return false
			}
		}
	}

	return true
}
