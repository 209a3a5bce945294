// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrPublishingChange = errors.New("error publishing change")

	// client side

	ErrRecordGone       = errors.New("record no longer exists on the server")
	ErrSessionRunning   = errors.New("a focus session is already running")
	ErrNoSessionRunning = errors.New("no focus session is running")
	ErrServerRejected   = errors.New("server rejected the change")
	ErrServerNotReached = errors.New("server could not be reached")
	ErrNotAuthorized    = errors.New("not authorized by the server")
)
