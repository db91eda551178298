package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tripplanner/internal/domain"
)

// SeedService copies the attraction dataset into a SQL store in batches.
type SeedService struct {
	store   domain.AttractionStore
	batch   int
	workers int64
}

func NewSeedService(store domain.AttractionStore, batch, workers int) *SeedService {
	if batch <= 0 {
		batch = 200
	}
	if workers <= 0 {
		workers = 1
	}
	return &SeedService{store: store, batch: batch, workers: int64(workers)}
}

// Seed upserts rows with at most `workers` batches in flight. Each batch carries its
// offset so the store keeps dataset order whichever batch lands first. A failed batch is
// logged and counted; the others still run. It returns the number of rows written.
func (s *SeedService) Seed(ctx context.Context, rows []domain.Attraction) (int, error) {
	sem := semaphore.NewWeighted(s.workers)
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		written int
		failed  int
	)

	for start := 0; start < len(rows); start += s.batch {
		end := start + s.batch
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return written, fmt.Errorf("seed: %w", err)
		}
		wg.Add(1)
		go func(first int, chunk []domain.Attraction) {
			defer wg.Done()
			defer sem.Release(1)

			if err := s.store.UpsertAttractions(ctx, first, chunk); err != nil {
				log.Warn().Err(err).Int("offset", first).Int("rows", len(chunk)).Msg("seed batch failed")
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			log.Info().Int("offset", first).Int("rows", len(chunk)).Msg("seed batch ok")
			mu.Lock()
			written += len(chunk)
			mu.Unlock()
		}(start, chunk)
	}
	wg.Wait()

	if failed > 0 {
		return written, fmt.Errorf("seed: %d batches failed", failed)
	}
	return written, nil
}
