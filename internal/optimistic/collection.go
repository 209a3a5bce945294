// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package optimistic

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/models"
)

// Collection is the optimistic, realtime-synced view of one user's records.
//
// All state lives behind mu; the drain goroutine of the subscription and the
// settlement of remote writes go through the same lock, so the local
// collection has exactly one writer at any time.
type Collection[R Record, P Patch[R]] struct {
	store  Store[R]
	userID int64
	opts   options[R]

	mu      sync.Mutex
	records []R
	pending map[string]*pending[R]
	loading bool
	loadErr error
	closed  bool

	sub     Subscription[R]
	subDone chan struct{}
}

// New creates an empty collection backed by store. Nothing is fetched until
// [Collection.Load] is called.
func New[R Record, P Patch[R]](store Store[R], userID int64, opts ...Option[R]) *Collection[R, P] {
	o := options[R]{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Collection[R, P]{
		store:   store,
		userID:  userID,
		opts:    o,
		pending: make(map[string]*pending[R]),
		loading: true,
	}
}

// Load performs the initial bulk read and opens the change feed.
//
// Until the first read completes [Collection.Loading] reports true. A failed
// read leaves the previous (possibly empty) records in place and is returned
// wrapped in [ErrStoreRead]; it is also kept for [Collection.LoadErr]. A
// failed subscription is not fatal: it is logged and [Collection.Live]
// reports false.
func (c *Collection[R, P]) Load(ctx context.Context) error {
	if err := c.Refresh(ctx); err != nil {
		if subErr := c.ensureSubscribed(ctx); subErr != nil {
			c.opts.logger.Warn().Err(subErr).Int64("user_id", c.userID).Msg("collection is not live")
		}
		return err
	}

	if err := c.ensureSubscribed(ctx); err != nil {
		c.opts.logger.Warn().Err(err).Int64("user_id", c.userID).Msg("collection is not live")
	}

	return nil
}

// Refresh re-reads the whole collection from the store and replaces the local
// records with the result. Records with an operation in flight keep their
// speculative state.
func (c *Collection[R, P]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.loading = true
	c.mu.Unlock()

	fetched, err := c.store.FetchAll(ctx, c.userID)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = false
	if err != nil {
		c.loadErr = fmt.Errorf("%w: %w", ErrStoreRead, err)
		c.opts.logger.Error().Err(err).Int64("user_id", c.userID).Msg("failed to fetch collection")
		return c.loadErr
	}
	if c.closed {
		return ErrClosed
	}

	c.loadErr = nil
	c.records = c.mergeFetched(fetched)

	c.opts.logger.Debug().
		Int64("user_id", c.userID).
		Int("records", len(c.records)).
		Int("pending", len(c.pending)).
		Msg("collection refreshed")

	return nil
}

// mergeFetched builds the new local collection from a bulk read. Duplicate ids
// in the read are dropped, pending deletes stay hidden and pending updates
// keep the local value.
func (c *Collection[R, P]) mergeFetched(fetched []R) []R {
	merged := make([]R, 0, len(fetched))
	seen := make(map[string]struct{}, len(fetched))

	for _, rec := range fetched {
		id := rec.RecordID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if p, ok := c.pending[id]; ok {
			if p.kind == OpDelete {
				continue
			}
			if idx := c.position(id); idx >= 0 {
				rec = c.records[idx]
			}
		}
		merged = append(merged, rec)
	}

	for id, p := range c.pending {
		if _, ok := seen[id]; ok || p.kind == OpDelete {
			continue
		}
		if idx := c.position(id); idx >= 0 {
			merged = append(merged, c.records[idx])
		}
	}

	if c.opts.less != nil {
		sort.SliceStable(merged, func(i, j int) bool { return c.opts.less(merged[i], merged[j]) })
	}

	return merged
}

// Resubscribe reopens a dropped change feed and re-reads the collection to
// pick up changes missed while the feed was down. It is a no-op for the feed
// when the collection is still live.
func (c *Collection[R, P]) Resubscribe(ctx context.Context) error {
	if err := c.ensureSubscribed(ctx); err != nil {
		return err
	}

	return c.Refresh(ctx)
}

func (c *Collection[R, P]) ensureSubscribed(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.sub != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	sub, err := c.store.Subscribe(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubscribe, err)
	}

	c.mu.Lock()
	if c.closed || c.sub != nil {
		c.mu.Unlock()
		_ = sub.Close()
		if c.closed {
			return ErrClosed
		}
		return nil
	}
	done := make(chan struct{})
	c.sub = sub
	c.subDone = done
	c.mu.Unlock()

	go c.drain(sub, done)

	c.opts.logger.Debug().Int64("user_id", c.userID).Msg("collection subscribed")
	return nil
}

// drain applies events of one subscription in delivery order until its
// channel is closed.
func (c *Collection[R, P]) drain(sub Subscription[R], done chan struct{}) {
	defer close(done)

	for ev := range sub.Events() {
		c.Ingest(ev)
	}

	c.mu.Lock()
	dropped := c.sub == sub
	if dropped {
		c.sub = nil
		c.subDone = nil
	}
	closed := c.closed
	c.mu.Unlock()

	if dropped && !closed {
		c.opts.logger.Warn().Int64("user_id", c.userID).Msg("collection subscription dropped")
	}
}

// Ingest applies one remote change event.
//
//   - insert: ignored when the id is already present or a delete of it is
//     pending, otherwise the record is added;
//   - update: ignored when an operation on the id is pending, otherwise the
//     local record is replaced;
//   - delete: ignored when an operation on the id is pending, otherwise the
//     local record is removed.
func (c *Collection[R, P]) Ingest(ev ChangeEvent[R]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	id := ev.recordID()
	p, isPending := c.pending[id]
	ignore := func(reason string) {
		c.opts.logger.Debug().Str("id", id).Str("kind", string(ev.Kind)).Msg(reason)
	}

	switch ev.Kind {
	case models.ChangeInsert:
		if c.position(id) >= 0 || (isPending && p.kind == OpDelete) {
			ignore("duplicate insert ignored")
			return
		}
		c.insert(ev.Record)

	case models.ChangeUpdate:
		if isPending {
			ignore("update ignored while operation is pending")
			return
		}
		idx := c.position(id)
		if idx < 0 {
			ignore("update for unknown record ignored")
			return
		}
		c.replace(idx, ev.Record)

	case models.ChangeDelete:
		if isPending {
			ignore("delete ignored while operation is pending")
			return
		}
		if idx := c.position(id); idx >= 0 {
			c.removeAt(idx)
		}

	default:
		c.opts.logger.Warn().Str("id", id).Str("kind", string(ev.Kind)).Msg("unknown change kind")
	}
}

// Mutate shallow-merges patch into the record with the given id, marks the
// record pending and runs apply in the background. On failure the record is
// restored to its value before the call and the notifier is raised.
func (c *Collection[R, P]) Mutate(id string, patch P, apply RemoteApply) (*Operation, error) {
	return c.update(id, OpUpdate, patch, apply)
}

// Complete is [Collection.Mutate] for completion toggles. It differs only in
// the operation kind reported to the notifier and by [Operation.Kind].
func (c *Collection[R, P]) Complete(id string, patch P, apply RemoteApply) (*Operation, error) {
	return c.update(id, OpComplete, patch, apply)
}

func (c *Collection[R, P]) update(id string, kind OperationKind, patch P, apply RemoteApply) (*Operation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, err := c.checkBegin(id)
	if err != nil {
		return nil, err
	}

	before := c.records[idx]
	p := &pending[R]{id: id, kind: kind, before: before, index: idx}
	c.pending[id] = p
	c.replace(idx, patch.Apply(before))

	op := newOperation(id, kind)
	go c.run(op, p, apply)

	return op, nil
}

// Delete removes the record with the given id, marks it pending and runs
// apply in the background. On failure the record is reinserted.
func (c *Collection[R, P]) Delete(id string, apply RemoteApply) (*Operation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, err := c.checkBegin(id)
	if err != nil {
		return nil, err
	}

	p := &pending[R]{id: id, kind: OpDelete, before: c.records[idx], index: idx}
	c.pending[id] = p
	c.removeAt(idx)

	op := newOperation(id, OpDelete)
	go c.run(op, p, apply)

	return op, nil
}

// checkBegin validates that an operation on id may start. Callers hold mu.
func (c *Collection[R, P]) checkBegin(id string) (int, error) {
	if c.closed {
		return -1, ErrClosed
	}
	if _, ok := c.pending[id]; ok {
		return -1, fmt.Errorf("%w: %s", ErrOperationPending, id)
	}
	idx := c.position(id)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	return idx, nil
}

// run executes the remote write of p and settles it.
func (c *Collection[R, P]) run(op *Operation, p *pending[R], apply RemoteApply) {
	ctx := context.Background()
	if c.opts.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.writeTimeout)
		defer cancel()
	}

	err := callApply(ctx, apply)
	werr, report := c.settle(p, err)

	if report && c.opts.notify != nil {
		c.opts.notify(werr)
	}

	if werr != nil {
		op.finish(werr)
		return
	}
	op.finish(nil)
}

// callApply turns a panicking write into an error so that it is rolled back
// like any other failure.
func callApply(ctx context.Context, apply RemoteApply) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("remote write panicked: %v", r)
		}
	}()

	if apply == nil {
		return nil
	}
	return apply(ctx)
}

// settle clears the pending marker of p and, if writeErr is set, rolls the
// record back. It returns the operation result and whether a failure has to
// be reported to the notifier. A failure that completes after Close is
// returned but not reported, and the records are left untouched.
func (c *Collection[R, P]) settle(p *pending[R], writeErr error) (*WriteError, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var werr *WriteError
	if writeErr != nil {
		werr = &WriteError{ID: p.id, Kind: p.kind, Err: writeErr}
	}

	if c.closed {
		return werr, false
	}
	if current, ok := c.pending[p.id]; !ok || current != p {
		return werr, false
	}
	delete(c.pending, p.id)

	log := c.opts.logger.With().Str("id", p.id).Str("op", string(p.kind)).Logger()
	if writeErr == nil {
		log.Debug().Msg("operation confirmed")
		return nil, false
	}

	switch p.kind {
	case OpDelete:
		if c.position(p.id) < 0 {
			c.restoreAt(p.index, p.before)
		}
	default:
		if idx := c.position(p.id); idx >= 0 {
			c.replace(idx, p.before)
		} else {
			c.restoreAt(p.index, p.before)
		}
	}

	log.Warn().Err(writeErr).Msg("operation rolled back")

	return werr, true
}

// Add inserts a record confirmed by the store through the local create path.
// It returns false when the record is already present, e.g. because the
// remote echo of the same insert arrived first.
func (c *Collection[R, P]) Add(rec R) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	id := rec.RecordID()
	if c.position(id) >= 0 {
		return false
	}
	if p, ok := c.pending[id]; ok && p.kind == OpDelete {
		return false
	}
	c.insert(rec)

	return true
}

// Create runs the remote create and adds its result to the collection. The
// record id is assigned by the store, so creation is not speculative.
func (c *Collection[R, P]) Create(ctx context.Context, create func(ctx context.Context) (R, error)) (R, error) {
	rec, err := create(ctx)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("%w: create: %w", ErrStoreWrite, err)
	}
	c.Add(rec)

	return rec, nil
}

// Records returns a copy of the current local collection.
func (c *Collection[R, P]) Records() []R {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]R, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the local record with the given id.
func (c *Collection[R, P]) Get(id string) (R, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.position(id); idx >= 0 {
		return c.records[idx], true
	}
	var zero R
	return zero, false
}

// IsPending reports whether an operation on id is in flight.
func (c *Collection[R, P]) IsPending(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.pending[id]
	return ok
}

// Loading reports whether a bulk read is outstanding.
func (c *Collection[R, P]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loading
}

// LoadErr returns the error of the last bulk read, or nil if it succeeded.
func (c *Collection[R, P]) LoadErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadErr
}

// Live reports whether the change feed is currently open.
func (c *Collection[R, P]) Live() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sub != nil
}

// Close tears the collection down: the change feed is closed and drained,
// and completions of writes still in flight no longer change the records or
// reach the notifier. Their operations still settle with the write result.
// Close does not wait for or cancel those writes.
func (c *Collection[R, P]) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	sub, done := c.sub, c.subDone
	c.sub, c.subDone = nil, nil
	c.mu.Unlock()

	if sub == nil {
		return nil
	}

	err := sub.Close()
	<-done
	if err != nil {
		return fmt.Errorf("close subscription: %w", err)
	}

	return nil
}

// position returns the index of id in records or -1. Callers hold mu.
func (c *Collection[R, P]) position(id string) int {
	for i := range c.records {
		if c.records[i].RecordID() == id {
			return i
		}
	}
	return -1
}

// insert adds rec at its sorted position, or at the front without an order.
func (c *Collection[R, P]) insert(rec R) {
	idx := 0
	if c.opts.less != nil {
		idx = sort.Search(len(c.records), func(i int) bool { return c.opts.less(rec, c.records[i]) })
	}
	c.insertAt(idx, rec)
}

// restoreAt reinserts a rolled-back record: at its sorted position with an
// order, otherwise at its original index if that is still in range, else at
// the end.
func (c *Collection[R, P]) restoreAt(idx int, rec R) {
	if c.opts.less != nil {
		c.insert(rec)
		return
	}
	if idx < 0 || idx > len(c.records) {
		idx = len(c.records)
	}
	c.insertAt(idx, rec)
}

func (c *Collection[R, P]) insertAt(idx int, rec R) {
	var zero R
	c.records = append(c.records, zero)
	copy(c.records[idx+1:], c.records[idx:])
	c.records[idx] = rec
}

// replace swaps the record at idx, moving it if an order is set and the new
// value sorts elsewhere.
func (c *Collection[R, P]) replace(idx int, rec R) {
	if c.opts.less == nil {
		c.records[idx] = rec
		return
	}
	c.removeAt(idx)
	c.insert(rec)
}

func (c *Collection[R, P]) removeAt(idx int) {
	var zero R
	copy(c.records[idx:], c.records[idx+1:])
	c.records[len(c.records)-1] = zero
	c.records = c.records[:len(c.records)-1]
}
