// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package optimistic

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/focus-on-it/models"
)

type taskCollection = Collection[models.Task, models.TaskPatch]

type fakeSub struct {
	ch   chan ChangeEvent[models.Task]
	once sync.Once
}

func newFakeSub() *fakeSub {
	return &fakeSub{ch: make(chan ChangeEvent[models.Task], 16)}
}

func (s *fakeSub) Events() <-chan ChangeEvent[models.Task] { return s.ch }

func (s *fakeSub) Close() error {
	s.once.Do(func() { close(s.ch) })
	return nil
}

type fakeStore struct {
	mu       sync.Mutex
	tasks    []models.Task
	fetchErr error
	subErr   error
	fetches  int
	subs     []*fakeSub
}

func (s *fakeStore) FetchAll(_ context.Context, _ int64) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetches++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return append([]models.Task(nil), s.tasks...), nil
}

func (s *fakeStore) Subscribe(_ context.Context, _ int64) (Subscription[models.Task], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subErr != nil {
		return nil, s.subErr
	}
	sub := newFakeSub()
	s.subs = append(s.subs, sub)
	return sub, nil
}

func (s *fakeStore) lastSub() *fakeSub {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.subs[len(s.subs)-1]
}

func task(id, title string) models.Task {
	return models.Task{ID: id, UserID: 1, Title: title, Priority: models.PriorityMedium}
}

func titlePatch(title string) models.TaskPatch {
	return models.TaskPatch{Title: &title}
}

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

// gate is a remote write that blocks until released with a result.
type gate struct {
	release chan error
	started chan struct{}
}

func newGate() *gate {
	return &gate{release: make(chan error, 1), started: make(chan struct{})}
}

func (g *gate) apply(ctx context.Context) error {
	close(g.started)
	select {
	case err := <-g.release:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func succeed(context.Context) error { return nil }

func loaded(t *testing.T, store *fakeStore, opts ...Option[models.Task]) *taskCollection {
	t.Helper()

	c := New[models.Task, models.TaskPatch](store, 1, opts...)
	require.NoError(t, c.Load(context.Background()))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func waitOp(t *testing.T, op *Operation) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	select {
	case <-op.Done():
		return op.Err()
	case <-ctx.Done():
		t.Fatalf("operation %s %s did not settle", op.Kind(), op.ID())
		return nil
	}
}

func TestCollection_Load(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A"), task("b", "B")}}
	c := New[models.Task, models.TaskPatch](store, 1)
	defer c.Close()

	assert.True(t, c.Loading(), "loading until the first read completes")
	assert.Empty(t, c.Records())
	assert.NoError(t, c.LoadErr())

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, []string{"a", "b"}, ids(c.Records()))
	assert.False(t, c.Loading())
	assert.True(t, c.Live())
	assert.NoError(t, c.LoadErr())
}

func TestCollection_Load_DropsDuplicateIDs(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A"), task("a", "A again"), task("b", "B")}}
	c := loaded(t, store)

	assert.Equal(t, []string{"a", "b"}, ids(c.Records()))
}

func TestCollection_Load_ReadFailure(t *testing.T) {
	cause := errors.New("connection refused")
	store := &fakeStore{fetchErr: cause}
	c := New[models.Task, models.TaskPatch](store, 1)
	defer c.Close()

	err := c.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreRead)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, c.LoadErr(), ErrStoreRead)
	assert.Empty(t, c.Records())
	assert.False(t, c.Loading())
}

func TestCollection_Load_SubscribeFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}, subErr: errors.New("ws down")}
	c := New[models.Task, models.TaskPatch](store, 1)
	defer c.Close()

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, []string{"a"}, ids(c.Records()))
	assert.False(t, c.Live())
}

func TestCollection_Mutate_IsVisibleBeforeWriteSettles(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store)
	g := newGate()

	op, err := c.Mutate("a", titlePatch("renamed"), g.apply)
	require.NoError(t, err)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "renamed", got.Title)
	assert.True(t, c.IsPending("a"))

	<-g.started
	g.release <- nil
	require.NoError(t, waitOp(t, op))

	got, _ = c.Get("a")
	assert.Equal(t, "renamed", got.Title)
	assert.False(t, c.IsPending("a"))
}

func TestCollection_Mutate_RollbackOnFailure(t *testing.T) {
	var (
		mu       sync.Mutex
		notified []*WriteError
	)
	notify := func(err *WriteError) {
		mu.Lock()
		defer mu.Unlock()
		notified = append(notified, err)
	}

	original := task("a", "A")
	original.Tags = []string{"home"}
	store := &fakeStore{tasks: []models.Task{original, task("b", "B")}}
	c := loaded(t, store, WithNotifier[models.Task](notify))

	cause := errors.New("permission denied")
	title := "renamed"
	tags := []string{"work"}
	op, err := c.Mutate("a", models.TaskPatch{Title: &title, Tags: &tags}, func(context.Context) error { return cause })
	require.NoError(t, err)

	err = waitOp(t, op)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreWrite)
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, []models.Task{original, task("b", "B")}, c.Records())
	assert.False(t, c.IsPending("a"))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, notified, 1)
	assert.Equal(t, "a", notified[0].ID)
	assert.Equal(t, OpUpdate, notified[0].Kind)
}

func TestCollection_Mutate_RejectsOverlappingOperation(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store)
	g := newGate()

	op, err := c.Mutate("a", titlePatch("first"), g.apply)
	require.NoError(t, err)

	_, err = c.Mutate("a", titlePatch("second"), succeed)
	assert.ErrorIs(t, err, ErrOperationPending)
	_, err = c.Delete("a", succeed)
	assert.ErrorIs(t, err, ErrOperationPending)

	got, _ := c.Get("a")
	assert.Equal(t, "first", got.Title)

	g.release <- nil
	require.NoError(t, waitOp(t, op))
}

func TestCollection_Mutate_UnknownID(t *testing.T) {
	c := loaded(t, &fakeStore{})

	_, err := c.Mutate("missing", titlePatch("x"), succeed)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = c.Delete("missing", succeed)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCollection_Mutate_PanicIsRolledBack(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store)

	op, err := c.Mutate("a", titlePatch("renamed"), func(context.Context) error { panic("boom") })
	require.NoError(t, err)

	assert.ErrorIs(t, waitOp(t, op), ErrStoreWrite)
	got, _ := c.Get("a")
	assert.Equal(t, "A", got.Title)
}

func TestCollection_Mutate_WriteTimeout(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store, WithWriteTimeout[models.Task](20*time.Millisecond))
	g := newGate()

	op, err := c.Mutate("a", titlePatch("renamed"), g.apply)
	require.NoError(t, err)

	err = waitOp(t, op)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	got, _ := c.Get("a")
	assert.Equal(t, "A", got.Title)
}

func TestCollection_Complete(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store)

	done := true
	op, err := c.Complete("a", models.TaskPatch{Done: &done}, succeed)
	require.NoError(t, err)
	assert.Equal(t, OpComplete, op.Kind())

	got, _ := c.Get("a")
	assert.True(t, got.Done)
	assert.NotNil(t, got.CompletedAt)

	require.NoError(t, waitOp(t, op))
}

func TestCollection_PendingIgnoresRemoteUpdateAndDelete(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store)
	g := newGate()

	op, err := c.Mutate("a", titlePatch("local"), g.apply)
	require.NoError(t, err)

	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeUpdate, Record: task("a", "remote")})
	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeDelete, ID: "a"})

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "local", got.Title)

	g.release <- nil
	require.NoError(t, waitOp(t, op))

	got, _ = c.Get("a")
	assert.Equal(t, "local", got.Title)

	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeUpdate, Record: task("a", "remote")})
	got, _ = c.Get("a")
	assert.Equal(t, "remote", got.Title)
}

func TestCollection_Delete_Success(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A"), task("b", "B")}}
	c := loaded(t, store)

	op, err := c.Delete("a", succeed)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(c.Records()))

	require.NoError(t, waitOp(t, op))

	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeDelete, ID: "a"})
	assert.Equal(t, []string{"b"}, ids(c.Records()))
}

func TestCollection_Delete_RestoresOriginalIndex(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A"), task("b", "B"), task("c", "C")}}
	c := loaded(t, store)

	op, err := c.Delete("b", func(context.Context) error { return errors.New("offline") })
	require.NoError(t, err)

	assert.ErrorIs(t, waitOp(t, op), ErrStoreWrite)
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Records()))
	assert.False(t, c.IsPending("b"))

	restored, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, task("b", "B"), restored)
}

func TestCollection_Delete_RestoreAppendsWhenIndexOutOfRange(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A"), task("b", "B"), task("c", "C")}}
	c := loaded(t, store)
	g := newGate()

	op, err := c.Delete("c", g.apply)
	require.NoError(t, err)

	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeDelete, ID: "a"})
	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeDelete, ID: "b"})

	g.release <- errors.New("offline")
	assert.Error(t, waitOp(t, op))
	assert.Equal(t, []string{"c"}, ids(c.Records()))
}

func TestCollection_InsertDuringPendingDeleteKeepsOneRecord(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store)
	g := newGate()

	op, err := c.Delete("a", g.apply)
	require.NoError(t, err)

	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeInsert, Record: task("a", "A")})
	assert.Empty(t, c.Records())

	g.release <- errors.New("offline")
	assert.Error(t, waitOp(t, op))
	assert.Equal(t, []string{"a"}, ids(c.Records()))
}

func TestCollection_InsertIsIdempotent(t *testing.T) {
	c := loaded(t, &fakeStore{})

	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeInsert, Record: task("a", "A")})
	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeInsert, Record: task("a", "A")})
	assert.False(t, c.Add(task("a", "A")))

	assert.Equal(t, []string{"a"}, ids(c.Records()))
}

func TestCollection_AddThenEcho(t *testing.T) {
	c := loaded(t, &fakeStore{tasks: []models.Task{task("a", "A")}})

	assert.True(t, c.Add(task("b", "B")))
	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeInsert, Record: task("b", "B")})

	assert.Equal(t, []string{"b", "a"}, ids(c.Records()))
}

func TestCollection_Create(t *testing.T) {
	c := loaded(t, &fakeStore{})

	rec, err := c.Create(context.Background(), func(context.Context) (models.Task, error) {
		return task("new", "New"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", rec.ID)
	assert.Equal(t, []string{"new"}, ids(c.Records()))

	cause := errors.New("validation failed")
	_, err = c.Create(context.Background(), func(context.Context) (models.Task, error) {
		return models.Task{}, cause
	})
	assert.ErrorIs(t, err, ErrStoreWrite)
	assert.ErrorIs(t, err, cause)
	assert.Len(t, c.Records(), 1)
}

func TestCollection_RemoteUpdateOfUnknownIDIsIgnored(t *testing.T) {
	c := loaded(t, &fakeStore{tasks: []models.Task{task("a", "A")}})

	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeUpdate, Record: task("ghost", "G")})

	assert.Equal(t, []string{"a"}, ids(c.Records()))
}

func TestCollection_EventsThroughSubscription(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store)
	sub := store.lastSub()

	sub.ch <- ChangeEvent[models.Task]{Kind: models.ChangeInsert, Record: task("b", "B")}
	sub.ch <- ChangeEvent[models.Task]{Kind: models.ChangeUpdate, Record: task("a", "A2")}
	sub.ch <- ChangeEvent[models.Task]{Kind: models.ChangeDelete, ID: "b"}

	require.Eventually(t, func() bool {
		got, ok := c.Get("a")
		return ok && got.Title == "A2" && len(c.Records()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestCollection_WithOrder(t *testing.T) {
	byPosition := func(a, b models.Task) bool { return a.Position < b.Position }
	first, second, third := task("a", "A"), task("b", "B"), task("c", "C")
	first.Position, second.Position, third.Position = 1, 2, 3

	store := &fakeStore{tasks: []models.Task{first, third}}
	c := loaded(t, store, WithOrder(byPosition))

	c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeInsert, Record: second})
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Records()))

	pos := 10
	op, err := c.Mutate("a", models.TaskPatch{Position: &pos}, func(context.Context) error { return errors.New("no") })
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(c.Records()))

	assert.Error(t, waitOp(t, op))
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Records()))
}

func TestCollection_SubscriptionDropAndResubscribe(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := loaded(t, store)
	require.True(t, c.Live())

	_ = store.lastSub().Close()
	require.Eventually(t, func() bool { return !c.Live() }, time.Second, 5*time.Millisecond)

	store.mu.Lock()
	store.tasks = append(store.tasks, task("b", "B"))
	store.mu.Unlock()

	require.NoError(t, c.Resubscribe(context.Background()))
	assert.True(t, c.Live())
	assert.Equal(t, []string{"a", "b"}, ids(c.Records()))
}

func TestCollection_RefreshKeepsPendingState(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{task("a", "A"), task("b", "B")}}
	c := loaded(t, store)
	ga, gb := newGate(), newGate()

	opA, err := c.Mutate("a", titlePatch("local"), ga.apply)
	require.NoError(t, err)
	opB, err := c.Delete("b", gb.apply)
	require.NoError(t, err)

	require.NoError(t, c.Refresh(context.Background()))

	got, _ := c.Get("a")
	assert.Equal(t, "local", got.Title)
	assert.Equal(t, []string{"a"}, ids(c.Records()))

	ga.release <- nil
	gb.release <- nil
	require.NoError(t, waitOp(t, opA))
	require.NoError(t, waitOp(t, opB))
}

func TestCollection_Close_DiscardsLateCompletions(t *testing.T) {
	notified := 0
	store := &fakeStore{tasks: []models.Task{task("a", "A")}}
	c := New[models.Task, models.TaskPatch](store, 1, WithNotifier[models.Task](func(*WriteError) { notified++ }))
	require.NoError(t, c.Load(context.Background()))
	g := newGate()

	op, err := c.Mutate("a", titlePatch("local"), g.apply)
	require.NoError(t, err)

	require.NoError(t, c.Close())
	assert.False(t, c.Live())

	g.release <- errors.New("offline")
	err = waitOp(t, op)
	assert.ErrorIs(t, err, ErrStoreWrite)
	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "a", werr.ID)
	assert.Equal(t, OpUpdate, werr.Kind)
	assert.Zero(t, notified)

	_, err = c.Mutate("a", titlePatch("again"), succeed)
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, c.Add(task("b", "B")))
	assert.ErrorIs(t, c.Refresh(context.Background()), ErrClosed)
	assert.NoError(t, c.Close())
}

func requireUniqueIDs(t *testing.T, step int, records []models.Task) {
	t.Helper()

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		_, dup := seen[rec.ID]
		require.Falsef(t, dup, "step %d: id %s appears twice in %v", step, rec.ID, ids(records))
		seen[rec.ID] = struct{}{}
	}
}

func TestCollection_RandomSequenceKeepsIDsUnique(t *testing.T) {
	byPosition := func(a, b models.Task) bool { return a.Position < b.Position }

	tests := []struct {
		name string
		opts []Option[models.Task]
	}{
		{name: "unordered"},
		{name: "ordered", opts: []Option[models.Task]{WithOrder(byPosition)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				rng := rand.New(rand.NewSource(seed))
				randomID := func() string { return fmt.Sprintf("t%d", rng.Intn(6)) }
				randomTask := func(id string) models.Task {
					rec := task(id, id)
					rec.Position = rng.Intn(10)
					return rec
				}

				initial := []models.Task{randomTask("t0"), randomTask("t1"), randomTask("t2")}
				c := loaded(t, &fakeStore{tasks: initial}, tt.opts...)

				type inflight struct {
					gate *gate
					op   *Operation
				}
				var running []inflight

				settleOne := func(i int) {
					w := running[i]
					running = append(running[:i], running[i+1:]...)
					if rng.Intn(2) == 0 {
						w.gate.release <- nil
						require.NoError(t, waitOp(t, w.op))
						return
					}
					w.gate.release <- errors.New("offline")
					require.ErrorIs(t, waitOp(t, w.op), ErrStoreWrite)
				}

				for step := 0; step < 200; step++ {
					id := randomID()

					switch rng.Intn(7) {
					case 0:
						g := newGate()
						pos := rng.Intn(10)
						op, err := c.Mutate(id, models.TaskPatch{Position: &pos}, g.apply)
						if err != nil {
							require.True(t, errors.Is(err, ErrOperationPending) || errors.Is(err, ErrRecordNotFound), "step %d: %v", step, err)
							break
						}
						running = append(running, inflight{gate: g, op: op})
					case 1:
						g := newGate()
						op, err := c.Delete(id, g.apply)
						if err != nil {
							require.True(t, errors.Is(err, ErrOperationPending) || errors.Is(err, ErrRecordNotFound), "step %d: %v", step, err)
							break
						}
						running = append(running, inflight{gate: g, op: op})
					case 2:
						c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeInsert, Record: randomTask(id)})
					case 3:
						c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeUpdate, Record: randomTask(id)})
					case 4:
						c.Ingest(ChangeEvent[models.Task]{Kind: models.ChangeDelete, ID: id})
					case 5:
						c.Add(randomTask(id))
					case 6:
						if len(running) > 0 {
							settleOne(rng.Intn(len(running)))
						}
					}

					requireUniqueIDs(t, step, c.Records())
				}

				for len(running) > 0 {
					settleOne(0)
					requireUniqueIDs(t, -1, c.Records())
				}
				for i := 0; i < 6; i++ {
					assert.False(t, c.IsPending(fmt.Sprintf("t%d", i)), "seed %d", seed)
				}
			}
		})
	}
}

func TestOperation_Wait(t *testing.T) {
	op := newOperation("a", OpDelete)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, op.Wait(ctx), context.Canceled)

	op.finish(nil)
	assert.NoError(t, op.Wait(context.Background()))
	assert.Equal(t, "a", op.ID())
}

func TestWriteError(t *testing.T) {
	cause := errors.New("conflict")
	err := &WriteError{ID: "a", Kind: OpUpdate, Err: cause}

	assert.ErrorIs(t, err, ErrStoreWrite)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "update a: conflict", err.Error())
}
