package mvt

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/gruppe-adler/irap-utils/internal/utils"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/orb/simplify"
)

const tileSize = mvt.DefaultExtent

func buildVectorTiles(writer utils.TileWriter, collections map[string]*geojson.FeatureCollection, maxLod uint8, worldSize float64) error {
	for lod := uint8(0); lod <= maxLod; lod++ {
		if err := buildLODVectorTiles(lod, writer, collections, worldSize); err != nil {
			return err
		}
	}
	return nil
}

func buildLODVectorTiles(lod uint8, writer utils.TileWriter, collections map[string]*geojson.FeatureCollection, worldSize float64) error {
	tilesPerRowCol := uint32(1) << lod

	lodCollections := make(map[string]*geojson.FeatureCollection, len(collections))
	for name, fc := range collections {
		lodCollections[name] = cloneFeatureCollection(fc)
	}
	layers := mvt.NewLayers(lodCollections)

	// project grid coordinates to pixels, y pointing down
	pixels := float64(tileSize) * float64(tilesPerRowCol)
	factor := pixels / worldSize
	projectLayersInPlace(layers, func(p orb.Point) orb.Point {
		return orb.Point{
			p[0] * factor,
			(worldSize - p[1]) * factor,
		}
	})

	for _, l := range layers {
		l.Version = 2
	}

	layers.Simplify(simplify.DouglasPeucker(1.0))
	layers.RemoveEmpty(1.0, 1.0)

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	wg := sync.WaitGroup{}
	errs := make(chan error, tilesPerRowCol*tilesPerRowCol)

	for col := uint32(0); col < tilesPerRowCol; col++ {
		for row := uint32(0); row < tilesPerRowCol; row++ {
			wg.Add(1)
			go func(col, row uint32) {
				defer wg.Done()

				if err := sem.Acquire(context.Background(), 1); err != nil {
					errs <- err
					return
				}
				defer sem.Release(1)

				data, err := createTile(col, row, layers)
				if err != nil {
					errs <- fmt.Errorf("creating tile %d/%d/%d: %w", lod, col, row, err)
					return
				}

				if err := writer.WriteTile(uint(lod), uint(col), uint(row), data); err != nil {
					errs <- err
				}
			}(col, row)
		}
	}

	wg.Wait()
	close(errs)

	return <-errs
}

func createTile(x uint32, y uint32, layers mvt.Layers) ([]byte, error) {
	layersClone := cloneLayers(layers)

	xOffset := float64(x * tileSize)
	yOffset := float64(y * tileSize)
	projectLayersInPlace(layersClone, func(p orb.Point) orb.Point {
		return orb.Point{
			p[0] - xOffset,
			p[1] - yOffset,
		}
	})

	layersClone.Clip(mvt.MapboxGLDefaultExtentBound)
	layersClone.RemoveEmpty(0, 0)

	return mvt.MarshalGzipped(layersClone)
}

// projectLayersInPlace projects all features of a layer
func projectLayersInPlace(layers mvt.Layers, projection orb.Projection) {
	for _, layer := range layers {
		for _, feature := range layer.Features {
			feature.Geometry = project.Geometry(feature.Geometry, projection)
		}
	}
}
