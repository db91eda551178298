// Package bootstrap turns a shared.Config into a ready Planner. Both binaries use it.
package bootstrap

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"tripplanner/internal/adapters/booking"
	"tripplanner/internal/adapters/openweather"
	"tripplanner/internal/adapters/places"
	"tripplanner/internal/adapters/upstream"
	"tripplanner/internal/app"
	"tripplanner/internal/dataset"
	"tripplanner/internal/shared"
	"tripplanner/internal/storage/sqlstore"
)

// Catalog loads the attraction table from SQL when DATASET_DSN is set, otherwise
// from the CSV file. A load failure is logged and yields a nil table, which every
// lookup reports as domain.ErrDatasetUnavailable.
func Catalog(ctx context.Context, cfg shared.Config) *dataset.Table {
	if cfg.DatasetDSN != "" {
		store, err := sqlstore.Open(ctx, cfg.DatasetDriver, cfg.DatasetDSN)
		if err != nil {
			log.Error().Err(err).Str("driver", cfg.DatasetDriver).Msg("attraction store unavailable")
			return nil
		}
		defer store.Close()
		rows, err := store.ListAttractions(ctx)
		if err != nil {
			log.Error().Err(err).Msg("load attractions from store failed")
			return nil
		}
		log.Info().Int("rows", len(rows)).Str("driver", cfg.DatasetDriver).Msg("attraction dataset loaded from store")
		return dataset.New(rows)
	}

	t, err := dataset.LoadCSV(cfg.DatasetPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.DatasetPath).Msg("attraction dataset unavailable")
		return nil
	}
	return t
}

// Planner wires the three provider clients over the shared upstream transport.
func Planner(cfg shared.Config, catalog *dataset.Table) *app.Planner {
	opts := func(h http.Header) upstream.Options {
		return upstream.Options{Timeout: cfg.UpstreamTimeout, RPS: cfg.UpstreamRPS, Header: h}
	}
	weather := openweather.New(cfg.OpenWeatherBase, cfg.OpenWeatherKey, upstream.New("openweather", opts(nil)))
	hotels := booking.New(cfg.BookingBase, cfg.Currency, upstream.New("booking", opts(booking.Headers(cfg.RapidAPIKey, cfg.BookingHost))))
	restaurants := places.New(cfg.PlacesBase, cfg.PlacesKey, upstream.New("places", opts(nil)))

	return app.NewPlanner(catalog, weather, hotels, restaurants, app.Options{
		Location: cfg.Location(),
		FanOut:   cfg.FanOut,
	})
}
