// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured, so no transport handler would be initialized.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServices is returned by NewHandlers when the service layer is nil.
	errNoServices = errors.New("services are required")
)
