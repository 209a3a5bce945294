// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TasksResponse is the body of a bulk task read.
type TasksResponse struct {
	Tasks  []Task `json:"tasks"`
	Length int    `json:"length"`
}

// SessionsResponse is the body of a bulk timer session read.
type SessionsResponse struct {
	Sessions []TimerSession `json:"sessions"`
	Length   int            `json:"length"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
