package dataset

import "sort"

// Cause id range the national registry assigns to deliberately started
// fires. Everything outside it counts as unintentional here, including
// unknown causes.
const (
	intentionalCauseMin = 400
	intentionalCauseMax = 499
)

// FireRecord is one wildfire incident from the historical registry.
// Records are immutable after load.
type FireRecord struct {
	Year         int     `json:"year"`
	Province     string  `json:"province"`
	Municipality string  `json:"municipality,omitempty"`
	CauseID      int     `json:"cause_id"`
	BurnedArea   float64 `json:"burned_area"`
	Personnel    int     `json:"num_personnel"`
	Heavy        int     `json:"num_heavy"`
	Air          int     `json:"num_air"`
	Lat          float64 `json:"lat,omitempty"`
	Lon          float64 `json:"lon,omitempty"`
}

// Intentional reports whether the incident's cause code falls in the
// deliberate-fire range.
func (r FireRecord) Intentional() bool {
	return r.CauseID >= intentionalCauseMin && r.CauseID <= intentionalCauseMax
}

// Dataset holds the loaded records plus load-time summary values used
// by the UI controls. It is read-only for the life of the process.
type Dataset struct {
	Records   []FireRecord
	Skipped   int
	MinYear   int
	MaxYear   int
	Provinces []string
}

// New builds a Dataset from loaded records, computing the year span
// and the sorted distinct province list.
func New(records []FireRecord, skipped int) *Dataset {
	ds := &Dataset{Records: records, Skipped: skipped}

	seen := make(map[string]struct{})
	for i, rec := range records {
		if i == 0 || rec.Year < ds.MinYear {
			ds.MinYear = rec.Year
		}
		if rec.Year > ds.MaxYear {
			ds.MaxYear = rec.Year
		}
		seen[rec.Province] = struct{}{}
	}

	ds.Provinces = make([]string, 0, len(seen))
	for name := range seen {
		ds.Provinces = append(ds.Provinces, name)
	}
	sort.Strings(ds.Provinces)

	return ds
}
