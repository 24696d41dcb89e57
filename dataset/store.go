package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads fire records from a Postgres table for deployments that
// keep the registry in a database instead of a CSV export. It is a
// one-shot source: records are read once at startup and the pool can
// be closed afterwards.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store backed by a pgx pool.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const fireRecordsSQL = `
    SELECT anio, provincia, COALESCE(municipio, ''), COALESCE(idcausa, 0),
           COALESCE(perdidassuperficiales, 0),
           COALESCE(numeromediospersonal, 0),
           COALESCE(numeromediospesados, 0),
           COALESCE(numeromediosaereos, 0),
           COALESCE(lat, 0), COALESCE(lon, 0)
    FROM fires
    WHERE anio IS NOT NULL
    ORDER BY anio, provincia
`

// LoadRecords reads the full registry into a Dataset. Rows with a NULL
// year are excluded by the query and reported in Dataset.Skipped.
func (s *Store) LoadRecords(ctx context.Context) (*Dataset, error) {
	var skipped int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM fires WHERE anio IS NULL`).Scan(&skipped); err != nil {
		return nil, fmt.Errorf("count skipped rows: %w", err)
	}

	rows, err := s.pool.Query(ctx, fireRecordsSQL)
	if err != nil {
		return nil, fmt.Errorf("query fire records: %w", err)
	}
	defer rows.Close()

	records := make([]FireRecord, 0)
	for rows.Next() {
		var rec FireRecord
		if err := rows.Scan(
			&rec.Year,
			&rec.Province,
			&rec.Municipality,
			&rec.CauseID,
			&rec.BurnedArea,
			&rec.Personnel,
			&rec.Heavy,
			&rec.Air,
			&rec.Lat,
			&rec.Lon,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return New(records, skipped), nil
}
