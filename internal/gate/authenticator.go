// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// Authenticator identifies the user behind a request.
type Authenticator interface {
	// Authenticate returns the request's user, or nil when the request
	// carries no usable credentials. A non-nil error is an internal failure
	// and must be treated as deny.
	Authenticate(r *http.Request) (*models.User, error)

	// HasCredentials reports whether the request presents an Authorization
	// header or the session cookie at all.
	HasCredentials(r *http.Request) bool

	// Enforced reports whether requests are checked at all.
	Enforced() bool
}

// NewAuthenticator builds the Authenticator for cfg.AuthType.
func NewAuthenticator(cfg config.App, svc service.AuthService) (Authenticator, error) {
	if cfg.AuthType == models.AuthNone {
		return noneAuthenticator{}, nil
	}
	if svc == nil {
		return nil, ErrNoAuthService
	}

	switch cfg.AuthType {
	case models.AuthBasic:
		return &basicAuthenticator{auth: svc, cookieName: cfg.SessionName}, nil
	case models.AuthSession, models.AuthSessionExp, models.AuthSessionDB:
		return &sessionAuthenticator{auth: svc, cookieName: cfg.SessionName}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAuthType, cfg.AuthType)
	}
}

// noneAuthenticator never identifies anyone and enforces nothing.
type noneAuthenticator struct{}

func (noneAuthenticator) Authenticate(*http.Request) (*models.User, error) { return nil, nil }
func (noneAuthenticator) HasCredentials(*http.Request) bool               { return false }
func (noneAuthenticator) Enforced() bool                                  { return false }

// basicAuthenticator checks the email and password of an
// "Authorization: Basic" header on every request.
type basicAuthenticator struct {
	auth       service.AuthService
	cookieName string
}

func (a *basicAuthenticator) Authenticate(r *http.Request) (*models.User, error) {
	if r == nil {
		return nil, nil
	}

	creds, ok := ExtractBasicCredentials(r.Header.Get(authorizationHeader))
	if !ok {
		return nil, nil
	}

	user, err := a.auth.Authenticate(r.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.FromRequest(r).Warn().Str("func", "*basicAuthenticator.Authenticate").Msg("basic credentials rejected")
			return nil, nil
		}
		return nil, fmt.Errorf("basic authentication: %w", err)
	}

	return &user, nil
}

func (a *basicAuthenticator) HasCredentials(r *http.Request) bool { return presented(r, a.cookieName) }
func (a *basicAuthenticator) Enforced() bool                      { return true }

// sessionAuthenticator resolves the session cookie through the AuthService.
// Memory, expiring and durable variants differ only in the registry wired
// into the service.
type sessionAuthenticator struct {
	auth       service.AuthService
	cookieName string
}

func (a *sessionAuthenticator) Authenticate(r *http.Request) (*models.User, error) {
	sessionID, ok := ExtractSessionCookie(r, a.cookieName)
	if !ok || sessionID == "" {
		return nil, nil
	}

	user, err := a.auth.ResolveSession(r.Context(), sessionID)
	if err != nil {
		return nil, fmt.Errorf("session authentication: %w", err)
	}
	if user == nil {
		logger.FromRequest(r).Warn().
			Str("func", "*sessionAuthenticator.Authenticate").
			Str("session_prefix", utils.ShortID(sessionID)).
			Msg("session cookie did not resolve")
	}

	return user, nil
}

func (a *sessionAuthenticator) HasCredentials(r *http.Request) bool { return presented(r, a.cookieName) }
func (a *sessionAuthenticator) Enforced() bool                      { return true }
