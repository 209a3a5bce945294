// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It runs the HTTP and gRPC servers in one errgroup and stops all of them
// when the first one fails, the parent context ends or a termination signal
// arrives. The realtime hub is closed before the HTTP server drains so that
// open websocket feeds end cleanly.
package server
