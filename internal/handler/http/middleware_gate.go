// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/gate"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// withGate is an HTTP middleware that enforces the configured
// authentication scheme on paths not listed in the excluded paths.
//
// A request presenting neither an Authorization header nor the session
// cookie is rejected with 401. A request whose credentials do not identify
// a user is rejected with 403; internal authentication failures are logged
// and rejected the same way. On success the user is stored in the request
// context under [utils.UserCtxKey].
func (h *Handler) withGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.authenticator == nil || !h.authenticator.Enforced() || !gate.RequiresAuth(r.URL.Path, h.excludedPaths) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		user, err := h.authenticator.Authenticate(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withGate").Msg("authentication failed, denying request")
			user = nil
		}

		if user == nil {
			if !h.authenticator.HasCredentials(r) {
				log.Warn().Str("path", r.URL.Path).Msg("no credentials presented")
				h.abort(w, r, http.StatusUnauthorized)
				return
			}
			log.Warn().Str("path", r.URL.Path).Msg("credentials rejected")
			h.abort(w, r, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}
