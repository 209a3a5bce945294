// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package optimistic

import (
	"time"

	"github.com/MKhiriev/focus-on-it/internal/logger"
)

// Notifier receives one call per rolled-back operation. It is invoked outside
// of the collection lock, so it may read the collection.
type Notifier func(err *WriteError)

// Option configures a [Collection].
type Option[R Record] func(*options[R])

type options[R Record] struct {
	less         func(a, b R) bool
	notify       Notifier
	logger       *logger.Logger
	writeTimeout time.Duration
}

// WithOrder keeps the collection sorted by less. Remote inserts, rollbacks
// and mutations that move a record are placed at their sorted position.
// Without an order new records are prepended.
func WithOrder[R Record](less func(a, b R) bool) Option[R] {
	return func(o *options[R]) { o.less = less }
}

// WithNotifier sets the callback raised when a remote write is rejected.
func WithNotifier[R Record](n Notifier) Option[R] {
	return func(o *options[R]) { o.notify = n }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger[R Record](l *logger.Logger) Option[R] {
	return func(o *options[R]) { o.logger = l }
}

// WithWriteTimeout bounds every remote write. Zero means no bound.
func WithWriteTimeout[R Record](d time.Duration) Option[R] {
	return func(o *options[R]) { o.writeTimeout = d }
}
