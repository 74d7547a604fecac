// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers returns the workers enabled by cfg. The cache janitor only runs
// when verification caching is on.
func NewWorkers(cfg config.StructuredConfig, purger CachePurger, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.App.VerificationCacheTTL > 0 && purger != nil {
		w.workers = append(w.workers, NewCacheJanitor(purger, cfg.Workers.CachePurgeInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until all workers started by Run have returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// CacheJanitor periodically purges expired cache entries.
type CacheJanitor struct {
	purger   CachePurger
	interval time.Duration
	logger   *logger.Logger
}

func NewCacheJanitor(purger CachePurger, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	return &CacheJanitor{purger: purger, interval: interval, logger: logger}
}

func (j *CacheJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Warn().Dur("interval", j.interval).Msg("cache janitor disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("cache janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("cache janitor stopped")
			return
		case <-ticker.C:
			j.purger.PurgeExpired(ctx)
		}
	}
}
