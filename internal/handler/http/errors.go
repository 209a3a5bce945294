// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidTimeParam is returned for a from/to query value that is not
	// RFC 3339.
	ErrInvalidTimeParam = errors.New("time parameter must be RFC 3339")
)
