// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the client.
package workers

import "context"

// Worker is a background job with an explicit lifecycle. Start returns
// immediately; the job runs until ctx ends or Stop is called. Stop blocks
// until the job has exited and is safe to call more than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
