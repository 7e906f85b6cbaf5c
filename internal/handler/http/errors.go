// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Validation errors reported by the /api/v1 session login endpoint. Their
// text is returned to the client as the "error" field.
var (
	// ErrEmailMissing is returned when the "email" form field is empty.
	ErrEmailMissing = errors.New("email missing")

	// ErrPasswordMissing is returned when the "password" form field is empty.
	ErrPasswordMissing = errors.New("password missing")
)
