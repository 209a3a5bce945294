// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Services is the part of the client services the app drives directly.
type Services interface {
	Load(ctx context.Context) error
	Close() error
}

// UI blocks until the user leaves the interface.
type UI interface {
	MainLoop(ctx context.Context) error
}

// Workers is a group of background jobs.
type Workers interface {
	Start(ctx context.Context)
	Stop()
}
