// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming task and timer session payloads before
// they reach the services.
//
// A Validator accepts any supported value (both value and pointer forms) and
// optionally a list of field names that restricts validation to those
// fields.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
