// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/handler"
	myGRPC "github.com/MKhiriev/focus-on-it/internal/handler/grpc"
	"github.com/MKhiriev/focus-on-it/internal/logger"
)

// shutdownTimeout bounds the graceful drain of all transports.
const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	health     *myGRPC.Handler
	hub        Closer

	logger *logger.Logger
}

// NewServer binds the configured addresses. hub may be nil.
func NewServer(handlers *handler.Handlers, hub Closer, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{hub: hub, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		listener, err := net.Listen("tcp", cfg.HTTPAddress)
		if err != nil {
			return nil, fmt.Errorf("%w: HTTP %s: %w", ErrListen, cfg.HTTPAddress, err)
		}
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), listener, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		listener, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			s.closeListeners()
			return nil, fmt.Errorf("%w: gRPC %s: %w", ErrListen, cfg.GRPCAddress, err)
		}
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, listener, logger))
		s.health = handlers.GRPC
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		t := t
		g.Go(func() error {
			if err := t.serve(); err != nil {
				return fmt.Errorf("%s server: %w", t.name(), err)
			}
			return nil
		})
	}

	if s.health != nil {
		g.Go(func() error { return s.health.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

// shutdown closes the hub first so that realtime handlers return, then
// drains every transport.
func (s *server) shutdown() error {
	if s.hub != nil {
		s.hub.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", t.name(), err))
		}
	}

	return errors.Join(errs...)
}

func (s *server) closeListeners() {
	for _, t := range s.transports {
		if h, ok := t.(*httpServer); ok {
			_ = h.listener.Close()
		}
	}
}
