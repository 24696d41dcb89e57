// Package geo loads the province boundary GeoJSON and joins filtered
// fire records onto it for the map layer.
package geo

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeatureCollection follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single province boundary with its properties.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry keeps coordinates as raw JSON: polygon rings are passed
// through to the browser untouched, never interpreted server-side.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Name returns the province name property, or "" when absent.
func (f Feature) Name() string {
	name, _ := f.Properties["name"].(string)
	return name
}

// ProvinceCode returns the cod_prov property as a string, or "".
func (f Feature) ProvinceCode() string {
	switch v := f.Properties["cod_prov"].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}

// ProvinceIndex holds the loaded boundaries, keyed by province name
// as it appears in the GeoJSON. Immutable after load.
type ProvinceIndex struct {
	Features []Feature
	byName   map[string]int
}

// LoadProvinces reads a FeatureCollection of province polygons from
// disk. Features without a name property are rejected: the join key
// would be lost.
func LoadProvinces(path string) (*ProvinceIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open provinces geojson: %w", err)
	}
	return ParseProvinces(data)
}

// ParseProvinces builds a ProvinceIndex from raw GeoJSON bytes.
func ParseProvinces(data []byte) (*ProvinceIndex, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse provinces geojson: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("unexpected geojson type %q", fc.Type)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("provinces geojson has no features")
	}

	idx := &ProvinceIndex{
		Features: fc.Features,
		byName:   make(map[string]int, len(fc.Features)),
	}
	for i, feat := range fc.Features {
		name := feat.Name()
		if name == "" {
			return nil, fmt.Errorf("feature %d has no name property", i)
		}
		idx.byName[name] = i
	}
	return idx, nil
}

// Lookup returns the boundary feature for a GeoJSON province name.
func (p *ProvinceIndex) Lookup(name string) (Feature, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Feature{}, false
	}
	return p.Features[i], true
}

// Len returns the number of province boundaries.
func (p *ProvinceIndex) Len() int {
	return len(p.Features)
}
