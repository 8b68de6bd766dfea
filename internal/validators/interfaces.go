// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of requests before they leave the
// device, so malformed memory payloads fail locally instead of costing a
// round trip.
//
// A Validator accepts any supported model and an optional list of field
// names; with no fields a per-model default set is checked.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
