// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestTaskPatch_Apply(t *testing.T) {
	base := Task{ID: "t1", Title: "Buy milk", Priority: PriorityLow, Tags: []string{"home"}}

	tests := []struct {
		name  string
		patch TaskPatch
		check func(t *testing.T, got Task)
	}{
		{
			name:  "empty patch keeps the task",
			patch: TaskPatch{},
			check: func(t *testing.T, got Task) { assert.Equal(t, base, got) },
		},
		{
			name:  "title and priority",
			patch: TaskPatch{Title: ptr("Buy oat milk"), Priority: ptr(PriorityHigh)},
			check: func(t *testing.T, got Task) {
				assert.Equal(t, "Buy oat milk", got.Title)
				assert.Equal(t, PriorityHigh, got.Priority)
			},
		},
		{
			name:  "done stamps completed at",
			patch: TaskPatch{Done: ptr(true)},
			check: func(t *testing.T, got Task) {
				assert.True(t, got.Done)
				require.NotNil(t, got.CompletedAt)
				assert.WithinDuration(t, time.Now(), *got.CompletedAt, time.Minute)
			},
		},
		{
			name:  "tags are copied",
			patch: TaskPatch{Tags: ptr([]string{"shop", "today"})},
			check: func(t *testing.T, got Task) { assert.Equal(t, []string{"shop", "today"}, got.Tags) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.patch.Apply(base))
		})
	}

	assert.Equal(t, "Buy milk", base.Title, "Apply must not modify its input")
}

func TestTaskPatch_ReopenClearsCompletedAt(t *testing.T) {
	done := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	task := Task{ID: "t1", Done: true, CompletedAt: &done}

	got := TaskPatch{Done: ptr(false)}.Apply(task)
	assert.False(t, got.Done)
	assert.Nil(t, got.CompletedAt)

	same := TaskPatch{Done: ptr(true)}.Apply(task)
	assert.Equal(t, &done, same.CompletedAt, "setting done again keeps the stamp")
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, TaskPatch{}.IsEmpty())
	assert.False(t, TaskPatch{Position: ptr(3)}.IsEmpty())
	assert.True(t, SessionPatch{}.IsEmpty())
	assert.False(t, SessionPatch{Completed: ptr(true)}.IsEmpty())
}

func TestSessionPatch_ApplyAndElapsed(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := TimerSession{ID: "s1", StartedAt: start, PlannedSeconds: 1500}

	assert.Equal(t, 10*time.Minute, s.Elapsed(start.Add(10*time.Minute)))
	assert.Zero(t, s.Elapsed(start.Add(-time.Minute)))

	got := SessionPatch{EndedAt: ptr(start.Add(25 * time.Minute)), Completed: ptr(true)}.Apply(s)
	assert.True(t, got.Completed)
	assert.Equal(t, 25*time.Minute, got.Elapsed(start.Add(time.Hour)))
	assert.Nil(t, s.EndedAt)
}

func TestNewChangeMessage(t *testing.T) {
	msg, err := NewChangeMessage(CollectionTasks, ChangeInsert, 7, "t1", Task{ID: "t1", Title: "A"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), msg.UserID)
	assert.Contains(t, string(msg.Record), `"title":"A"`)

	msg, err = NewChangeMessage(CollectionTasks, ChangeDelete, 7, "t1", Task{ID: "t1"})
	require.NoError(t, err)
	assert.Nil(t, msg.Record)

	_, err = NewChangeMessage(CollectionTasks, ChangeUpdate, 7, "t1", make(chan int))
	assert.Error(t, err)
}

func TestAppBuildInfo_Response(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "2026-03-01", "abc123")

	assert.Equal(t, VersionResponse{Version: "1.2.0", Date: "2026-03-01", Commit: "abc123"}, info.Response(""))
	assert.Equal(t, "2.0.0", info.Response("2.0.0").Version)
}
