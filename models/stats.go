// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StatsRequest bounds the statistics window. Zero values mean "unbounded".
type StatsRequest struct {
	UserID int64     `json:"-"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
}

// Stats is the aggregate shown on the statistics dashboard.
type Stats struct {
	// CompletedTasks is the number of tasks completed within the window.
	CompletedTasks int64 `json:"completed_tasks"`

	// OpenTasks is the number of tasks not done at the time of the request.
	OpenTasks int64 `json:"open_tasks"`

	// FocusSeconds is the total time spent in focus sessions started within
	// the window. Running sessions are not counted.
	FocusSeconds int64 `json:"focus_seconds"`

	// CompletedSessions is the number of focus sessions that ran their full
	// planned length within the window.
	CompletedSessions int64 `json:"completed_sessions"`
}
