package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sdelosreyes/incendios-viewer/config"
	"github.com/sdelosreyes/incendios-viewer/dataset"
	"github.com/sdelosreyes/incendios-viewer/geo"
	httpserver "github.com/sdelosreyes/incendios-viewer/http"
	"github.com/sdelosreyes/incendios-viewer/observability"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	data, err := loadRecords(ctx, cfg)
	if err != nil {
		slog.Error("record load error", "error", err)
		os.Exit(1)
	}
	if data.Skipped > 0 {
		slog.Warn("skipped rows with unparsable year", "count", data.Skipped)
	}
	slog.Info("fire records loaded",
		"count", len(data.Records),
		"provinces", len(data.Provinces),
		"min_year", data.MinYear,
		"max_year", data.MaxYear,
	)

	provinces, err := geo.LoadProvinces(cfg.ProvincesGeoJSON)
	if err != nil {
		slog.Error("province geometry load error", "error", err)
		os.Exit(1)
	}
	slog.Info("province boundaries loaded", "count", provinces.Len())

	metrics := observability.NewMetrics()
	metrics.RecordsLoaded.Set(float64(len(data.Records)))
	metrics.RowsSkipped.Set(float64(data.Skipped))

	srv := httpserver.New(cfg, data, provinces, metrics)
	slog.Info("dashboard listening", "addr", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// loadRecords picks the record source: Postgres when DATABASE_URL is
// set, the CSV export otherwise. Either way the load is one-shot and
// the result is immutable.
func loadRecords(ctx context.Context, cfg config.Config) (*dataset.Dataset, error) {
	if cfg.DatabaseURL == "" {
		return dataset.LoadCSV(cfg.FiresCSV)
	}

	store, err := dataset.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LoadRecords(ctx)
}
