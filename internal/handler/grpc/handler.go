// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the server. The
// reported status follows the reachability of the database.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/focus-on-it/internal/logger"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "focusonit.v1.FocusOnIt"

// DefaultProbeInterval is how often the database is pinged.
const DefaultProbeInterval = 15 * time.Second

// Pinger checks that a dependency is reachable. *store.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	pinger Pinger

	probeInterval time.Duration

	logger *logger.Logger
}

// NewHandler returns a handler reporting SERVING until the first failed
// probe. A nil pinger is always healthy.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		health:        health.NewServer(),
		pinger:        pinger,
		probeInterval: DefaultProbeInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Probe pings the database once and publishes the result.
func (h *Handler) Probe(ctx context.Context) {
	if h.pinger == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.probeInterval)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Probe").Msg("database is not reachable")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Run probes on every tick until ctx ends.
func (h *Handler) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	h.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING to every watcher and ignores later probes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
