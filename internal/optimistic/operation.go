// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package optimistic

import (
	"context"
	"fmt"
)

// OperationKind is the kind of a speculative operation.
type OperationKind string

const (
	OpUpdate   OperationKind = "update"
	OpComplete OperationKind = "complete"
	OpDelete   OperationKind = "delete"
)

// pending is the bookkeeping of one in-flight operation.
type pending[R Record] struct {
	id     string
	kind   OperationKind
	before R
	index  int
}

// Operation is a handle on a speculative operation. The local change is
// already visible when the handle is returned; Done is closed once the remote
// write has settled and the collection has been reconciled.
type Operation struct {
	id   string
	kind OperationKind
	done chan struct{}
	err  error
}

func newOperation(id string, kind OperationKind) *Operation {
	return &Operation{id: id, kind: kind, done: make(chan struct{})}
}

// ID returns the id of the record the operation targets.
func (o *Operation) ID() string { return o.id }

// Kind returns the operation kind.
func (o *Operation) Kind() OperationKind { return o.kind }

// Done is closed after the operation settled.
func (o *Operation) Done() <-chan struct{} { return o.done }

// Err returns the settled result: nil on success or a [*WriteError] after a
// rollback. It must only be read after Done is closed.
func (o *Operation) Err() error { return o.err }

// Wait blocks until the operation settles or ctx ends.
func (o *Operation) Wait(ctx context.Context) error {
	select {
	case <-o.done:
		return o.err
	case <-ctx.Done():
		return fmt.Errorf("waiting for %s %s: %w", o.kind, o.id, ctx.Err())
	}
}

func (o *Operation) finish(err error) {
	o.err = err
	close(o.done)
}
