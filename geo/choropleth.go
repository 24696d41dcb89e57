package geo

import (
	"github.com/sdelosreyes/incendios-viewer/dataset"
)

// SpainBounds is the fixed viewport for the map layer, wide enough to
// cover the peninsula plus the Canary and Balearic islands. Stored as
// [[south, west], [north, east]] to match the Leaflet bounds shape.
var SpainBounds = [2][2]float64{{26.5, -18.5}, {44.5, 5.5}}

// ProvinceStats are the per-province sums shown in map tooltips and
// used for the choropleth color scale.
type ProvinceStats struct {
	Incidents      int     `json:"incidents"`
	Personnel      int     `json:"num_personnel"`
	Heavy          int     `json:"num_heavy"`
	Air            int     `json:"num_air"`
	TotalResources int     `json:"total_resources"`
	BurnedArea     float64 `json:"burned_area"`
}

// Layer is the assembled map payload: one feature per province with
// aggregate properties injected, plus the scale ceiling and viewport
// the client needs to draw it.
type Layer struct {
	Collection        FeatureCollection `json:"collection"`
	Bounds            [2][2]float64     `json:"bounds"`
	MaxTotalResources int               `json:"max_total_resources"`
	MatchedRecords    int               `json:"matched_records"`
	UnmatchedRecords  int               `json:"unmatched_records"`
}

// Aggregate sums record stats per province, keyed by the normalized
// GeoJSON province name.
func Aggregate(records []dataset.FireRecord) map[string]ProvinceStats {
	stats := make(map[string]ProvinceStats)
	for _, rec := range records {
		name := NormalizeProvince(rec.Province)
		st := stats[name]
		st.Incidents++
		st.Personnel += rec.Personnel
		st.Heavy += rec.Heavy
		st.Air += rec.Air
		st.TotalResources += rec.Personnel + rec.Heavy + rec.Air
		st.BurnedArea += rec.BurnedArea
		stats[name] = st
	}
	return stats
}

// Choropleth joins the filtered records onto the province boundaries.
// Every boundary is emitted, zero-valued when no record matched, so an
// empty subset still renders a complete base map. Records naming a
// province with no boundary are dropped from the layer (they remain in
// chart aggregates) and reported in UnmatchedRecords.
func Choropleth(records []dataset.FireRecord, index *ProvinceIndex) Layer {
	stats := Aggregate(records)

	layer := Layer{
		Collection: FeatureCollection{
			Type:     "FeatureCollection",
			Features: make([]Feature, 0, index.Len()),
		},
		Bounds: SpainBounds,
	}

	for _, feat := range index.Features {
		st := stats[feat.Name()]

		props := make(map[string]any, len(feat.Properties)+6)
		for k, v := range feat.Properties {
			props[k] = v
		}
		props["incidents"] = st.Incidents
		props["num_personnel"] = st.Personnel
		props["num_heavy"] = st.Heavy
		props["num_air"] = st.Air
		props["total_resources"] = st.TotalResources
		props["burned_area"] = st.BurnedArea

		layer.Collection.Features = append(layer.Collection.Features, Feature{
			Type:       feat.Type,
			Properties: props,
			Geometry:   feat.Geometry,
		})

		if st.TotalResources > layer.MaxTotalResources {
			layer.MaxTotalResources = st.TotalResources
		}
	}

	for name, st := range stats {
		if _, ok := index.Lookup(name); ok {
			layer.MatchedRecords += st.Incidents
		} else {
			layer.UnmatchedRecords += st.Incidents
		}
	}

	return layer
}
