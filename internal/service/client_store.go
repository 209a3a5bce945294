// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/focus-on-it/internal/adapter"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/optimistic"
	"github.com/MKhiriev/focus-on-it/models"
)

// remoteStore exposes one collection of the server as an optimistic.Store.
// Every subscription opens its own change feed and keeps the messages of
// its collection only.
type remoteStore[R optimistic.Record] struct {
	serverAdapter adapter.ServerAdapter
	collection    models.Collection
	fetch         func(ctx context.Context) ([]R, error)

	logger *logger.Logger
}

func newTaskStore(serverAdapter adapter.ServerAdapter, log *logger.Logger) optimistic.Store[models.Task] {
	return &remoteStore[models.Task]{
		serverAdapter: serverAdapter,
		collection:    models.CollectionTasks,
		fetch:         serverAdapter.ListTasks,
		logger:        log,
	}
}

func newSessionStore(serverAdapter adapter.ServerAdapter, log *logger.Logger) optimistic.Store[models.TimerSession] {
	return &remoteStore[models.TimerSession]{
		serverAdapter: serverAdapter,
		collection:    models.CollectionSessions,
		fetch:         serverAdapter.ListSessions,
		logger:        log,
	}
}

// FetchAll ignores userID: the server scopes every call to the token owner.
func (s *remoteStore[R]) FetchAll(ctx context.Context, _ int64) ([]R, error) {
	records, err := s.fetch(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return records, nil
}

func (s *remoteStore[R]) Subscribe(ctx context.Context, _ int64) (optimistic.Subscription[R], error) {
	feed, err := s.serverAdapter.Subscribe(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	sub := &feedSubscription[R]{
		feed:   feed,
		events: make(chan optimistic.ChangeEvent[R]),
		done:   make(chan struct{}),
		logger: s.logger,
	}
	go sub.forward(s.collection)

	return sub, nil
}

type feedSubscription[R optimistic.Record] struct {
	feed   adapter.ChangeFeed
	events chan optimistic.ChangeEvent[R]
	done   chan struct{}
	once   sync.Once

	logger *logger.Logger
}

func (s *feedSubscription[R]) Events() <-chan optimistic.ChangeEvent[R] {
	return s.events
}

func (s *feedSubscription[R]) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.feed.Close()
	})

	return err
}

// forward decodes the messages of collection until the feed ends.
// Undecodable records are logged and skipped.
func (s *feedSubscription[R]) forward(collection models.Collection) {
	defer close(s.events)

	for msg := range s.feed.Messages() {
		if msg.Collection != collection {
			continue
		}

		ev, err := decodeChange[R](msg)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "feedSubscription.forward").
				Str("collection", string(collection)).
				Str("id", msg.ID).
				Msg("skipping undecodable change")
			continue
		}

		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func decodeChange[R optimistic.Record](msg models.ChangeMessage) (optimistic.ChangeEvent[R], error) {
	ev := optimistic.ChangeEvent[R]{Kind: msg.Kind, ID: msg.ID}

	switch msg.Kind {
	case models.ChangeDelete:
		if msg.ID == "" {
			return ev, fmt.Errorf("delete without id")
		}
	case models.ChangeInsert, models.ChangeUpdate:
		if err := json.Unmarshal(msg.Record, &ev.Record); err != nil {
			return ev, fmt.Errorf("decoding %s record: %w", msg.Kind, err)
		}
	default:
		return ev, fmt.Errorf("unknown change kind %q", msg.Kind)
	}

	return ev, nil
}
