package dataset

// Selection is the active set of user-chosen predicates. The zero
// value matches every record; each populated dimension narrows the
// result (logical AND across dimensions). Selections replace each
// other wholesale, they are never patched in place.
type Selection struct {
	// Inclusive year bounds. Zero means unbounded on that side.
	StartYear int `json:"start_year,omitempty"`
	EndYear   int `json:"end_year,omitempty"`

	// Provinces restricts to the named dataset provinces (as they
	// appear in the CSV, not the normalized GeoJSON names).
	Provinces []string `json:"provinces,omitempty"`

	// Causes restricts to specific cause ids.
	Causes []int `json:"causes,omitempty"`

	// The dashboard checkboxes default to showing both classes, so
	// these are phrased as exclusions to keep the zero value a
	// pass-through.
	ExcludeIntentional   bool `json:"exclude_intentional,omitempty"`
	ExcludeUnintentional bool `json:"exclude_unintentional,omitempty"`
}

// Matches reports whether a single record satisfies every active
// predicate.
func (s Selection) Matches(r FireRecord) bool {
	if s.StartYear != 0 && r.Year < s.StartYear {
		return false
	}
	if s.EndYear != 0 && r.Year > s.EndYear {
		return false
	}
	if len(s.Provinces) > 0 && !containsString(s.Provinces, r.Province) {
		return false
	}
	if len(s.Causes) > 0 && !containsInt(s.Causes, r.CauseID) {
		return false
	}
	if s.ExcludeIntentional && r.Intentional() {
		return false
	}
	if s.ExcludeUnintentional && !r.Intentional() {
		return false
	}
	return true
}

// Apply returns the records matching the selection. Pure and
// deterministic: input order is preserved, the input slice is never
// mutated, and an empty result is a normal outcome.
func Apply(records []FireRecord, sel Selection) []FireRecord {
	out := make([]FireRecord, 0, len(records))
	for _, rec := range records {
		if sel.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
