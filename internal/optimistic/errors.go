// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package optimistic

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreRead marks a failed bulk read of the collection.
	ErrStoreRead = errors.New("store read failed")

	// ErrStoreWrite marks a rejected remote write.
	ErrStoreWrite = errors.New("store write failed")

	// ErrSubscribe marks a failure to open the change feed.
	ErrSubscribe = errors.New("store subscription failed")

	// ErrRecordNotFound is returned when an operation targets an id that is
	// not in the local collection.
	ErrRecordNotFound = errors.New("record not found in collection")

	// ErrOperationPending is returned when an operation targets an id that
	// already has an operation in flight.
	ErrOperationPending = errors.New("operation already pending for record")

	// ErrClosed is returned by operations on a torn-down collection.
	ErrClosed = errors.New("collection is closed")
)

// WriteError describes a speculative operation whose remote write was
// rejected and rolled back. It matches both [ErrStoreWrite] and the
// underlying cause with [errors.Is].
type WriteError struct {
	ID   string
	Kind OperationKind
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrStoreWrite, e.Err}
}
