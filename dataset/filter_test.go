package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdelosreyes/incendios-viewer/dataset"
)

func testRecords() []dataset.FireRecord {
	return []dataset.FireRecord{
		{Year: 2010, Province: "A", CauseID: 410, BurnedArea: 10},
		{Year: 2015, Province: "A", CauseID: 100, BurnedArea: 20},
		{Year: 2020, Province: "B", CauseID: 450, BurnedArea: 30},
	}
}

func TestApply(t *testing.T) {
	records := testRecords()

	t.Run("zero selection passes everything through", func(t *testing.T) {
		out := dataset.Apply(records, dataset.Selection{})
		assert.Equal(t, records, out)
	})

	t.Run("output is always a subset", func(t *testing.T) {
		selections := []dataset.Selection{
			{},
			{StartYear: 2012},
			{EndYear: 2012},
			{Provinces: []string{"B"}},
			{Causes: []int{100}},
			{ExcludeIntentional: true},
			{ExcludeUnintentional: true},
			{StartYear: 2030},
		}
		for _, sel := range selections {
			out := dataset.Apply(records, sel)
			assert.LessOrEqual(t, len(out), len(records))
			for _, rec := range out {
				assert.Contains(t, records, rec)
			}
		}
	})

	t.Run("year range and province combine with AND", func(t *testing.T) {
		out := dataset.Apply(records, dataset.Selection{
			StartYear: 2012,
			EndYear:   2020,
			Provinces: []string{"A"},
		})
		require.Len(t, out, 1)
		assert.Equal(t, 2015, out[0].Year)
		assert.Equal(t, "A", out[0].Province)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		sel := dataset.Selection{StartYear: 2012, Provinces: []string{"A", "B"}}
		once := dataset.Apply(records, sel)
		twice := dataset.Apply(once, sel)
		assert.Equal(t, once, twice)
	})

	t.Run("exclude intentional", func(t *testing.T) {
		out := dataset.Apply(records, dataset.Selection{ExcludeIntentional: true})
		require.Len(t, out, 1)
		assert.Equal(t, 100, out[0].CauseID)
	})

	t.Run("exclude unintentional", func(t *testing.T) {
		out := dataset.Apply(records, dataset.Selection{ExcludeUnintentional: true})
		require.Len(t, out, 2)
		for _, rec := range out {
			assert.True(t, rec.Intentional())
		}
	})

	t.Run("cause subset", func(t *testing.T) {
		out := dataset.Apply(records, dataset.Selection{Causes: []int{410, 450}})
		require.Len(t, out, 2)
	})

	t.Run("empty result is normal", func(t *testing.T) {
		out := dataset.Apply(records, dataset.Selection{Provinces: []string{"Z"}})
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := testRecords()
		dataset.Apply(records, dataset.Selection{Provinces: []string{"A"}})
		assert.Equal(t, before, records)
	})
}

func TestFireRecordIntentional(t *testing.T) {
	tests := []struct {
		name    string
		causeID int
		want    bool
	}{
		{"below range", 399, false},
		{"lower bound", 400, true},
		{"inside range", 455, true},
		{"upper bound", 499, true},
		{"above range", 500, false},
		{"unknown cause", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := dataset.FireRecord{CauseID: tt.causeID}
			assert.Equal(t, tt.want, rec.Intentional())
		})
	}
}
