// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/service"
)

// Realtime connection timing.
const (
	defaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
)

type Handler struct {
	services *service.Services

	upgrader       websocket.Upgrader
	pingInterval   time.Duration
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The feed is authenticated by bearer token, not by cookies.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		pingInterval:   defaultPingInterval,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
