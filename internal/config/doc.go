// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the FocusOnIt configuration.
//
// Sources are merged in this order, later non-zero fields winning:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// [GetStructuredConfig] returns the validated server configuration and
// [GetClientConfig] the client view.
package config
