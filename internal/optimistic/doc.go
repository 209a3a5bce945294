// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package optimistic keeps an in-memory, UI-facing copy of a user's record
// collection current while the user mutates it speculatively.
//
// A [Collection] merges two streams:
//   - local speculative mutations ([Collection.Mutate], [Collection.Complete],
//     [Collection.Delete]) that change the visible state immediately and run
//     their remote write in the background;
//   - authoritative change events pushed by the store over a [Subscription].
//
// The central rule is pending precedence: while a speculative operation on a
// record is in flight, remote update and delete events for that record are
// ignored. The operation's own completion either clears the pending marker
// (success) or restores the record to the snapshot taken before the mutation
// (failure) and notifies the caller once.
//
// A collection is owned by one view. It never persists anything; tearing it
// down with [Collection.Close] unsubscribes and discards completions that
// arrive afterwards.
package optimistic
