// Package charts computes the time-series and ranking aggregates
// behind the dashboard's chart panels. All functions are pure views
// over an already-filtered record slice.
package charts

import (
	"sort"

	"github.com/sdelosreyes/incendios-viewer/dataset"
)

// YearBurnedArea is one point of the burned-area trend line.
type YearBurnedArea struct {
	Year       int     `json:"year"`
	BurnedArea float64 `json:"burned_area"`
	Incidents  int     `json:"incidents"`
}

// BurnedAreaByYear sums burned hectares per year, sorted by year.
// Empty input yields an empty series.
func BurnedAreaByYear(records []dataset.FireRecord) []YearBurnedArea {
	area := make(map[int]float64)
	count := make(map[int]int)
	for _, rec := range records {
		area[rec.Year] += rec.BurnedArea
		count[rec.Year]++
	}

	out := make([]YearBurnedArea, 0, len(area))
	for year, total := range area {
		out = append(out, YearBurnedArea{Year: year, BurnedArea: total, Incidents: count[year]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// YearResources is one bar of the stacked resources chart.
type YearResources struct {
	Year      int `json:"year"`
	Personnel int `json:"num_personnel"`
	Heavy     int `json:"num_heavy"`
	Air       int `json:"num_air"`
}

// ResourcesByYear sums deployed personnel, heavy machinery and
// aircraft per year, sorted by year.
func ResourcesByYear(records []dataset.FireRecord) []YearResources {
	byYear := make(map[int]YearResources)
	for _, rec := range records {
		yr := byYear[rec.Year]
		yr.Year = rec.Year
		yr.Personnel += rec.Personnel
		yr.Heavy += rec.Heavy
		yr.Air += rec.Air
		byYear[rec.Year] = yr
	}

	out := make([]YearResources, 0, len(byYear))
	for _, yr := range byYear {
		out = append(out, yr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// ProvinceBurnedArea is one bar of the top-provinces ranking.
type ProvinceBurnedArea struct {
	Province   string  `json:"province"`
	BurnedArea float64 `json:"burned_area"`
}

// TopProvinces ranks provinces by total burned area, descending, and
// keeps the first n. Province names are the dataset names, not the
// normalized GeoJSON ones. Ties break alphabetically so the ranking
// is deterministic.
func TopProvinces(records []dataset.FireRecord, n int) []ProvinceBurnedArea {
	if n <= 0 {
		return []ProvinceBurnedArea{}
	}

	byProvince := make(map[string]float64)
	for _, rec := range records {
		byProvince[rec.Province] += rec.BurnedArea
	}

	out := make([]ProvinceBurnedArea, 0, len(byProvince))
	for name, total := range byProvince {
		out = append(out, ProvinceBurnedArea{Province: name, BurnedArea: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BurnedArea != out[j].BurnedArea {
			return out[i].BurnedArea > out[j].BurnedArea
		}
		return out[i].Province < out[j].Province
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// CauseBreakdown counts incidents by intent class.
type CauseBreakdown struct {
	Intentional   int `json:"intentional"`
	Unintentional int `json:"unintentional"`
}

// Causes splits the subset into intentional and unintentional
// incident counts. The two buckets always sum to the subset size.
func Causes(records []dataset.FireRecord) CauseBreakdown {
	var b CauseBreakdown
	for _, rec := range records {
		if rec.Intentional() {
			b.Intentional++
		} else {
			b.Unintentional++
		}
	}
	return b
}
