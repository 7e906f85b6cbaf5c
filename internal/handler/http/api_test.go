package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	rr := serve(newTestHandler(t, &mockAuthService{}, nil), httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","version":"test"}`, rr.Body.String())
}

func TestUnauthorizedAndForbidden(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/unauthorized", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/forbidden", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, rr.Body.String())
}

func TestSessionLogin(t *testing.T) {
	user := &models.User{ID: "u-1", Email: "bob@example.com"}

	tests := []struct {
		name       string
		form       url.Values
		loginFn    func(ctx context.Context, email, password string) (string, error)
		resolveFn  func(ctx context.Context, sessionID string) (*models.User, error)
		wantStatus int
		wantBody   string
		wantCookie bool
	}{
		{
			name:       "email missing",
			form:       url.Values{"password": {"secret"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"email missing"}`,
		},
		{
			name:       "password missing",
			form:       url.Values{"email": {"bob@example.com"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"password missing"}`,
		},
		{
			name: "invalid credentials",
			form: url.Values{"email": {"bob@example.com"}, "password": {"nope"}},
			loginFn: func(context.Context, string, string) (string, error) {
				return "", service.ErrInvalidCredentials
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "logged in",
			form: url.Values{"email": {"bob@example.com"}, "password": {"secret"}},
			loginFn: func(context.Context, string, string) (string, error) {
				return "sid", nil
			},
			resolveFn: func(_ context.Context, sessionID string) (*models.User, error) {
				assert.Equal(t, "sid", sessionID)
				return user, nil
			},
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name: "fresh session lost",
			form: url.Values{"email": {"bob@example.com"}, "password": {"secret"}},
			loginFn: func(context.Context, string, string) (string, error) {
				return "sid", nil
			},
			resolveFn: func(context.Context, string) (*models.User, error) {
				return nil, nil
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{loginFn: tt.loginFn, resolveSessionFn: tt.resolveFn}, nil)

			rr := serve(h, formRequest(http.MethodPost, "/api/v1/auth_session/login", tt.form))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			cookie := responseCookie(rr, testCookie)
			if !tt.wantCookie {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.Equal(t, "sid", cookie.Value)

			var got models.User
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, user.Email, got.Email)
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}

func TestSessionLogout(t *testing.T) {
	tests := []struct {
		name       string
		cookie     string
		endFn      func(ctx context.Context, sessionID string) (bool, error)
		wantStatus int
	}{
		{
			name:   "ended",
			cookie: "sid",
			endFn: func(context.Context, string) (bool, error) {
				return true, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "already gone",
			cookie: "sid",
			endFn: func(context.Context, string) (bool, error) {
				return false, nil
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "no cookie",
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "storage failure",
			cookie: "sid",
			endFn: func(context.Context, string) (bool, error) {
				return false, service.ErrStorage
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{endSessionFn: tt.endFn}, nil)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth_session/logout", nil)
			if tt.cookie != "" {
				withSessionCookie(req, tt.cookie)
			}
			rr := serve(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{}`, rr.Body.String())
			}
		})
	}
}

func TestMe(t *testing.T) {
	t.Run("gate disabled", func(t *testing.T) {
		rr := serve(newTestHandler(t, &mockAuthService{}, nil), httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("authenticated", func(t *testing.T) {
		authenticator := &mockAuthenticator{enforced: true, hasCreds: true, user: &models.User{ID: "u-1", Email: "bob@example.com"}}
		rr := serve(newTestHandler(t, &mockAuthService{}, authenticator), httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "u-1", got.ID)
	})
}
