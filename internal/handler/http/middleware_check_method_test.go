// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a chi.Mux shaped like the form API without
// Handler.Init, so no services are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
	}
	router.Post("/sessions", ok(http.StatusOK))
	router.Delete("/sessions", ok(http.StatusFound))
	router.Get("/profile", ok(http.StatusOK))
	router.Post("/reset_password", ok(http.StatusOK))
	router.Put("/reset_password", ok(http.StatusOK))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		// Registered method passes through.
		{name: "POST /sessions", method: http.MethodPost, path: "/sessions", expectedStatus: http.StatusOK},
		{name: "DELETE /sessions", method: http.MethodDelete, path: "/sessions", expectedStatus: http.StatusFound},
		{name: "GET /profile", method: http.MethodGet, path: "/profile", expectedStatus: http.StatusOK},
		{name: "PUT /reset_password", method: http.MethodPut, path: "/reset_password", expectedStatus: http.StatusOK},
		// Unregistered method on an existing route is hidden as 404.
		{name: "GET /sessions", method: http.MethodGet, path: "/sessions", expectedStatus: http.StatusNotFound},
		{name: "PUT /sessions", method: http.MethodPut, path: "/sessions", expectedStatus: http.StatusNotFound},
		{name: "POST /profile", method: http.MethodPost, path: "/profile", expectedStatus: http.StatusNotFound},
		{name: "HEAD /profile", method: http.MethodHead, path: "/profile", expectedStatus: http.StatusNotFound},
		{name: "DELETE /reset_password", method: http.MethodDelete, path: "/reset_password", expectedStatus: http.StatusNotFound},
		// Unknown route never reaches the handler.
		{name: "GET /nonexistent", method: http.MethodGet, path: "/nonexistent", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_NotFoundBody(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodPatch, "/profile", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()
	const n = 50
	done := make(chan bool, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method, want := http.MethodGet, http.StatusOK
			if i%2 == 1 {
				method, want = http.MethodDelete, http.StatusNotFound
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/profile", nil))
			done <- rr.Code == want
		}(i)
	}

	for i := 0; i < n; i++ {
		assert.True(t, <-done)
	}
}
