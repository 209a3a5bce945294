// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ChangeKind tags a change notification pushed by the server.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Collection names the record collection a change belongs to.
type Collection string

const (
	CollectionTasks    Collection = "tasks"
	CollectionSessions Collection = "sessions"
)

// ChangeMessage is the wire form of a change notification sent over the
// realtime feed. Record is the JSON-encoded record for insert and update and
// is omitted for delete.
type ChangeMessage struct {
	Collection Collection      `json:"collection"`
	Kind       ChangeKind      `json:"kind"`
	ID         string          `json:"id"`
	UserID     int64           `json:"-"`
	Record     json.RawMessage `json:"record,omitempty"`
}

// NewChangeMessage encodes record into a [ChangeMessage]. A nil record is
// allowed for deletes.
func NewChangeMessage(collection Collection, kind ChangeKind, userID int64, id string, record any) (ChangeMessage, error) {
	msg := ChangeMessage{Collection: collection, Kind: kind, ID: id, UserID: userID}
	if record == nil || kind == ChangeDelete {
		return msg, nil
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return ChangeMessage{}, err
	}
	msg.Record = raw

	return msg, nil
}
