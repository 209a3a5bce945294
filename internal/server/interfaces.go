// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs every enabled transport until ctx ends or a termination
// signal arrives, then shuts them down gracefully.
type Server interface {
	RunServer(ctx context.Context) error
}

// transport is one listening server managed by [Server].
type transport interface {
	name() string

	// serve blocks until the transport is shut down. A graceful shutdown
	// returns nil.
	serve() error

	shutdown(ctx context.Context) error
}

// Closer is the part of the realtime hub the server stops on shutdown.
type Closer interface {
	Close()
}
