// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/service"
)

// App ties the client services, the background workers and the terminal
// UI into one process lifecycle.
type App struct {
	services Services
	ui       UI
	workers  Workers

	logger *logger.Logger
}

func NewApp(services Services, ui UI, workers Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || workers == nil {
		return nil, ErrAppNotConfigured
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   log,
	}, nil
}

// Run loads the collections in the background, starts the workers and
// blocks in the UI. A failed load is shown by the UI and retried by the
// resubscribe worker, so it does not stop the client.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loaded := make(chan struct{})
	go func() {
		defer close(loaded)
		if err := a.services.Load(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("initial load failed")
		}
	}()

	a.workers.Start(ctx)

	uiErr := a.ui.MainLoop(ctx)

	cancel()
	<-loaded
	a.workers.Stop()

	closeErr := a.services.Close()
	if closeErr != nil {
		a.logger.Err(closeErr).Str("func", "*App.Run").Msg("closing collections")
	}

	if uiErr != nil {
		return fmt.Errorf("terminal ui: %w", uiErr)
	}

	return closeErr
}

var _ Services = (*service.ClientServices)(nil)
