// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package optimistic

import (
	"context"

	"github.com/MKhiriev/focus-on-it/models"
)

// Record is an item of a synced collection. The identifier is assigned by the
// remote store and never changes.
type Record interface {
	RecordID() string
}

// Patch is a typed partial update of a record of kind R.
type Patch[R Record] interface {
	Apply(R) R
}

// ChangeEvent is a change notification delivered by the remote store.
// Record is the new value for insert and update; for delete only ID is
// meaningful.
type ChangeEvent[R Record] struct {
	Kind   models.ChangeKind
	ID     string
	Record R
}

// recordID returns the identifier the event refers to.
func (e ChangeEvent[R]) recordID() string {
	if e.ID != "" {
		return e.ID
	}
	return e.Record.RecordID()
}

// Store is the authoritative side of a collection.
type Store[R Record] interface {
	// FetchAll returns every record of the user in presentation order.
	FetchAll(ctx context.Context, userID int64) ([]R, error)

	// Subscribe opens a change feed scoped to the user. ctx bounds the
	// establishment of the feed only; the feed lives until it is closed or
	// dropped by the remote side.
	Subscribe(ctx context.Context, userID int64) (Subscription[R], error)
}

// Subscription is an open change feed.
//
// Events are delivered in order on the channel returned by Events. The channel
// is closed when the feed drops or after Close.
type Subscription[R Record] interface {
	Events() <-chan ChangeEvent[R]
	Close() error
}

// RemoteApply performs the authoritative write backing a speculative
// operation.
type RemoteApply func(ctx context.Context) error
