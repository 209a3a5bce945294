// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	// ErrListen wraps a failure to bind a configured address.
	ErrListen = errors.New("cannot bind server address")
)
