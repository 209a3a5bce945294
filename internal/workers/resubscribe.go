// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/service"
)

// DefaultResubscribeInterval is used when no positive interval is configured.
const DefaultResubscribeInterval = 5 * time.Second

// ResubscribeWorker reopens the change feed of every collection that is not
// live. A resubscription also refetches the collection, so changes missed
// while the feed was down are picked up.
type ResubscribeWorker struct {
	collections []service.Resubscriber
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewResubscribeWorker(collections []service.Resubscriber, interval time.Duration, log *logger.Logger) *ResubscribeWorker {
	if interval <= 0 {
		interval = DefaultResubscribeInterval
	}

	return &ResubscribeWorker{
		collections: collections,
		interval:    interval,
		logger:      log,
	}
}

// Start stops a previous run and checks the collections on every tick.
func (w *ResubscribeWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.Tick(jobCtx)
			}
		}
	}()
}

func (w *ResubscribeWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Tick resubscribes every collection that is not live or whose last bulk
// read failed. A failure is logged and retried on the next tick.
func (w *ResubscribeWorker) Tick(ctx context.Context) {
	for _, collection := range w.collections {
		if collection.Live() && collection.LoadErr() == nil {
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, w.interval)
		err := collection.Resubscribe(attemptCtx)
		cancel()

		if err != nil {
			w.logger.Warn().Err(err).Str("func", "*ResubscribeWorker.Tick").Msg("resubscribe failed, retrying later")
			continue
		}
		w.logger.Info().Str("func", "*ResubscribeWorker.Tick").Msg("collection resynced")
	}
}
