package mvt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
)

func cloneFeature(f *geojson.Feature) *geojson.Feature {
	newFeature := geojson.NewFeature(orb.Clone(f.Geometry))

	newFeature.ID = f.ID
	newFeature.Properties = f.Properties.Clone()

	return newFeature
}

func cloneFeatureCollection(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	newFc := geojson.NewFeatureCollection()

	newFc.Features = make([]*geojson.Feature, len(fc.Features))
	for i, f := range fc.Features {
		newFc.Features[i] = cloneFeature(f)
	}

	return newFc
}

func cloneLayers(layers mvt.Layers) mvt.Layers {
	newLayers := make(mvt.Layers, len(layers))

	for index, l := range layers {
		fc := cloneFeatureCollection(&geojson.FeatureCollection{Features: l.Features})
		newLayers[index] = &mvt.Layer{
			Name:     l.Name,
			Version:  l.Version,
			Extent:   l.Extent,
			Features: fc.Features,
		}
	}

	return newLayers
}
