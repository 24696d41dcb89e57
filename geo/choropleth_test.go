package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdelosreyes/incendios-viewer/dataset"
	"github.com/sdelosreyes/incendios-viewer/geo"
)

func provinceIndex(t *testing.T) *geo.ProvinceIndex {
	t.Helper()
	idx, err := geo.ParseProvinces([]byte(sampleGeoJSON))
	require.NoError(t, err)
	return idx
}

func TestChoropleth(t *testing.T) {
	records := []dataset.FireRecord{
		{Year: 2010, Province: "Leon", CauseID: 410, BurnedArea: 10, Personnel: 5, Heavy: 1, Air: 1},
		{Year: 2012, Province: "Leon", CauseID: 100, BurnedArea: 2.5, Personnel: 3},
		{Year: 2015, Province: "Madrid", CauseID: 200, BurnedArea: 7, Personnel: 2, Heavy: 2},
		{Year: 2016, Province: "Atlantis", CauseID: 100, BurnedArea: 99, Personnel: 50},
	}

	t.Run("joins aggregates onto boundaries", func(t *testing.T) {
		layer := geo.Choropleth(records, provinceIndex(t))
		require.Len(t, layer.Collection.Features, 2)

		var leon map[string]any
		for _, feat := range layer.Collection.Features {
			if feat.Name() == "León" {
				leon = feat.Properties
			}
		}
		require.NotNil(t, leon, "León feature missing")
		assert.Equal(t, 2, leon["incidents"])
		assert.Equal(t, 8, leon["num_personnel"])
		assert.Equal(t, 1, leon["num_heavy"])
		assert.Equal(t, 1, leon["num_air"])
		assert.Equal(t, 10, leon["total_resources"])
		assert.Equal(t, 12.5, leon["burned_area"])
	})

	t.Run("records without a boundary are dropped from the layer", func(t *testing.T) {
		layer := geo.Choropleth(records, provinceIndex(t))
		assert.Equal(t, 3, layer.MatchedRecords)
		assert.Equal(t, 1, layer.UnmatchedRecords)
	})

	t.Run("scale ceiling ignores unmatched records", func(t *testing.T) {
		layer := geo.Choropleth(records, provinceIndex(t))
		assert.Equal(t, 10, layer.MaxTotalResources)
	})

	t.Run("empty subset renders a zero-valued base map", func(t *testing.T) {
		layer := geo.Choropleth(nil, provinceIndex(t))
		require.Len(t, layer.Collection.Features, 2)
		assert.Equal(t, "FeatureCollection", layer.Collection.Type)
		for _, feat := range layer.Collection.Features {
			assert.Equal(t, 0, feat.Properties["incidents"])
			assert.Equal(t, 0, feat.Properties["total_resources"])
			assert.Equal(t, 0.0, feat.Properties["burned_area"])
		}
		assert.Equal(t, 0, layer.MaxTotalResources)
		assert.Equal(t, 0, layer.MatchedRecords)
		assert.Equal(t, geo.SpainBounds, layer.Bounds)
	})

	t.Run("source feature properties are not mutated", func(t *testing.T) {
		idx := provinceIndex(t)
		geo.Choropleth(records, idx)
		feat, ok := idx.Lookup("León")
		require.True(t, ok)
		_, polluted := feat.Properties["incidents"]
		assert.False(t, polluted)
	})

	t.Run("geometry passes through untouched", func(t *testing.T) {
		idx := provinceIndex(t)
		layer := geo.Choropleth(records, idx)
		src, _ := idx.Lookup("Madrid")
		var got geo.Feature
		for _, feat := range layer.Collection.Features {
			if feat.Name() == "Madrid" {
				got = feat
			}
		}
		assert.Equal(t, src.Geometry.Type, got.Geometry.Type)
		assert.Equal(t, string(src.Geometry.Coordinates), string(got.Geometry.Coordinates))
	})
}

func TestAggregate(t *testing.T) {
	t.Run("keys are normalized names", func(t *testing.T) {
		stats := geo.Aggregate([]dataset.FireRecord{
			{Province: "Leon", Personnel: 1},
			{Province: "León", Personnel: 2},
		})
		// Both spellings land in the same bucket.
		require.Len(t, stats, 1)
		assert.Equal(t, 3, stats["León"].Personnel)
		assert.Equal(t, 2, stats["León"].Incidents)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, geo.Aggregate(nil))
	})
}
