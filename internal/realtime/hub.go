// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime fans change notifications out to the live connections of
// each user.
package realtime

import (
	"errors"
	"sync"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/models"
)

// DefaultBuffer is the number of events a subscriber may lag behind before it
// is disconnected.
const DefaultBuffer = 64

var ErrHubClosed = errors.New("realtime hub is closed")

// Hub is an in-process per-user publish/subscribe hub. Publish never blocks:
// a subscriber whose buffer is full loses the event and is disconnected, so
// that it can resubscribe and refetch instead of silently missing changes.
type Hub struct {
	mu          sync.Mutex
	subscribers map[int64]map[*Subscriber]struct{}
	buffer      int
	closed      bool

	logger *logger.Logger
}

// Subscriber receives the change messages of one user until it is closed by
// its owner, dropped by the hub, or the hub shuts down.
type Subscriber struct {
	userID int64
	events chan models.ChangeMessage
	hub    *Hub
}

func NewHub(buffer int, log *logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	return &Hub{
		subscribers: make(map[int64]map[*Subscriber]struct{}),
		buffer:      buffer,
		logger:      log,
	}
}

// Subscribe registers a new subscriber for userID.
func (h *Hub) Subscribe(userID int64) (*Subscriber, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	sub := &Subscriber{
		userID: userID,
		events: make(chan models.ChangeMessage, h.buffer),
		hub:    h,
	}

	subs, ok := h.subscribers[userID]
	if !ok {
		subs = make(map[*Subscriber]struct{})
		h.subscribers[userID] = subs
	}
	subs[sub] = struct{}{}

	h.logger.Debug().Str("func", "Hub.Subscribe").Int64("user_id", userID).Int("subscribers", len(subs)).Msg("subscriber added")

	return sub, nil
}

// Publish delivers msg to every subscriber of msg.UserID.
func (h *Hub) Publish(msg models.ChangeMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	for sub := range h.subscribers[msg.UserID] {
		select {
		case sub.events <- msg:
		default:
			h.logger.Warn().
				Str("func", "Hub.Publish").
				Int64("user_id", msg.UserID).
				Str("collection", string(msg.Collection)).
				Str("id", msg.ID).
				Msg("subscriber buffer full, disconnecting")
			h.removeLocked(sub)
		}
	}
}

// Subscribers returns the number of live subscribers of userID.
func (h *Hub) Subscribers(userID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subscribers[userID])
}

// Close disconnects every subscriber. Later subscriptions fail with
// ErrHubClosed and later publications are discarded.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for _, subs := range h.subscribers {
		for sub := range subs {
			h.removeLocked(sub)
		}
	}
}

func (h *Hub) removeLocked(sub *Subscriber) {
	subs, ok := h.subscribers[sub.userID]
	if !ok {
		return
	}
	if _, ok = subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.subscribers, sub.userID)
	}
	close(sub.events)
}

// Events is closed when the subscriber is disconnected.
func (s *Subscriber) Events() <-chan models.ChangeMessage {
	return s.events
}

// Close unregisters the subscriber. It is safe to call more than once and
// after the hub dropped it.
func (s *Subscriber) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	s.hub.removeLocked(s)
}
