package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column headers as they appear in the incendios registry export. The
// file is semicolon-separated. Header matching is case-insensitive and
// tolerates a UTF-8 BOM on the first column.
const (
	colYear         = "anio"
	colProvince     = "provincia"
	colMunicipality = "municipio"
	colCause        = "idcausa"
	colBurnedArea   = "perdidassuperficiales"
	colPersonnel    = "numeromediospersonal"
	colHeavy        = "numeromediospesados"
	colAir          = "numeromediosaereos"
	colLat          = "lat"
	colLon          = "lon"
)

// LoadCSV reads the wildfire registry from a semicolon-separated CSV
// file. Rows whose year cannot be parsed are skipped and counted in
// Dataset.Skipped; other numeric fields coerce to zero on bad input.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fires csv: %w", err)
	}
	defer f.Close()

	ds, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read fires csv %s: %w", path, err)
	}
	return ds, nil
}

func readCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	if _, ok := cols[colYear]; !ok {
		return nil, fmt.Errorf("missing required column %q", colYear)
	}
	if _, ok := cols[colProvince]; !ok {
		return nil, fmt.Errorf("missing required column %q", colProvince)
	}

	var records []FireRecord
	skipped := 0

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row should not abort the
			// whole load.
			skipped++
			continue
		}

		year, ok := parseIntField(field(row, cols, colYear))
		if !ok {
			skipped++
			continue
		}

		personnel, _ := parseIntField(field(row, cols, colPersonnel))
		heavy, _ := parseIntField(field(row, cols, colHeavy))
		air, _ := parseIntField(field(row, cols, colAir))
		cause, _ := parseIntField(field(row, cols, colCause))

		records = append(records, FireRecord{
			Year:         year,
			Province:     strings.TrimSpace(field(row, cols, colProvince)),
			Municipality: strings.TrimSpace(field(row, cols, colMunicipality)),
			CauseID:      cause,
			BurnedArea:   parseFloatOrZero(field(row, cols, colBurnedArea)),
			Personnel:    personnel,
			Heavy:        heavy,
			Air:          air,
			Lat:          parseFloatOrZero(field(row, cols, colLat)),
			Lon:          parseFloatOrZero(field(row, cols, colLon)),
		})
	}

	return New(records, skipped), nil
}

// indexColumns maps lowercased header names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func field(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseIntField(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Some exports carry integer columns as "1234.0".
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// parseFloatOrZero parses a decimal field, accepting a comma decimal
// separator, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}
