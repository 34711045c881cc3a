package mvt

import (
	"fmt"
	"sync"

	"github.com/gruppe-adler/irap-utils/internal/contour"
	"github.com/gruppe-adler/irap-utils/internal/irap"
	"github.com/paulmach/orb/geojson"
)

// majorFactor picks every n-th contour level for the major contour layer
const majorFactor = 5

func contourLayerName(interval float64) string {
	return fmt.Sprintf("contours/%g", interval)
}

func buildContours(grid irap.Grid, cellSize, interval, elevOffset float64, layers map[string]*geojson.FeatureCollection) {
	minor := geojson.NewFeatureCollection()
	major := geojson.NewFeatureCollection()

	mutex := sync.Mutex{}
	waitGrp := sync.WaitGroup{}

	for _, level := range contour.Levels(grid.MinValue, grid.MaxValue, interval) {
		waitGrp.Add(1)
		go func(level float64) {
			defer waitGrp.Done()

			lines := contour.MarchingSquares(grid, cellSize, level)

			mutex.Lock()
			defer mutex.Unlock()

			isMajor := isMultiple(level, interval*majorFactor)
			for _, line := range lines {
				f := geojson.NewFeature(line)
				f.Properties["elevation"] = level + elevOffset
				minor.Append(f)
				if isMajor {
					major.Append(f)
				}
			}
		}(level)
	}

	waitGrp.Wait()

	layers[contourLayerName(interval)] = minor
	layers[contourLayerName(interval*majorFactor)] = major
}

func isMultiple(value, step float64) bool {
	n := value / step
	return n == float64(int64(n))
}
