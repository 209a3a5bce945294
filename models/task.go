// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Priority is the user-assigned urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a single to-do item of a user.
//
// ID is assigned by the server when the task is created and never changes
// afterwards. Position and CreatedAt are presentation ordering attributes only.
type Task struct {
	// ID is the server-assigned identifier (UUID v7).
	ID string `json:"id"`

	// UserID is the owner of the task.
	UserID int64 `json:"user_id"`

	// Title is the short human-readable name of the task.
	Title string `json:"title"`

	// Description holds optional free-form details.
	Description *string `json:"description,omitempty"`

	// Done reports whether the task is completed.
	Done bool `json:"done"`

	// Priority is the urgency of the task.
	Priority Priority `json:"priority"`

	// DueDate is the optional deadline.
	DueDate *time.Time `json:"due_date,omitempty"`

	// Position is the explicit manual ordering slot in the list.
	Position int `json:"position"`

	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty"`

	// CompletedAt is set when Done flips to true and cleared when it flips back.
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID returns the stable identifier of the task.
func (t Task) RecordID() string {
	return t.ID
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// NewTask is the payload of a task creation request. The server fills in the
// identifier, the owner, the timestamps and, when omitted, the position.
type NewTask struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Position    *int       `json:"position,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// TaskPatch is a typed partial update of a [Task]. Every field is optional;
// nil means "leave unchanged".
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Done        *bool      `json:"done,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Position    *int       `json:"position,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Done == nil &&
		p.Priority == nil &&
		p.DueDate == nil &&
		p.Position == nil &&
		p.Tags == nil
}

// Apply returns a copy of t with every non-nil field of the patch merged in.
//
// CompletedAt follows Done: it is stamped when a task becomes done and cleared
// when it is reopened. The server stamps its own value on write; the local
// one only has to be plausible until the authoritative record arrives.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		description := *p.Description
		t.Description = &description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.Position != nil {
		t.Position = *p.Position
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Done != nil && *p.Done != t.Done {
		t.Done = *p.Done
		if t.Done {
			now := time.Now().UTC()
			t.CompletedAt = &now
		} else {
			t.CompletedAt = nil
		}
	}

	return t
}
