// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the transport settings of the client.
type ClientAdapter struct {
	// HTTPAddress is the server address, host:port or a full URL.
	HTTPAddress string
	// Token is the bearer token presented on every request.
	Token string
	// RequestTimeout bounds reads and the change feed handshake.
	RequestTimeout time.Duration
	// WriteTimeout bounds a single speculative write.
	WriteTimeout time.Duration
}

// ClientWorkers holds client background worker settings.
type ClientWorkers struct {
	ResubscribeInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Workers ClientWorkers
	// LogFile is the rotated client log file.
	LogFile string
}

// GetClientConfig loads the merged configuration and maps the fields the
// client runtime needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Token:          cfg.App.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			WriteTimeout:   cfg.Adapter.WriteTimeout,
		},
		Workers: ClientWorkers{ResubscribeInterval: cfg.Workers.ResubscribeInterval},
		LogFile: cfg.Log.File,
	}
}
