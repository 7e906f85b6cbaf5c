package gate

import (
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	authorizationHeader = "Authorization"
	basicScheme         = "Basic"
)

// ExtractBasicCredentials parses an "Authorization: Basic <base64>" header
// value. The decoded payload must be valid UTF-8 and contain ':'; it is
// split on the first ':' only, so passwords may contain colons.
//
// Empty email or password halves are returned as is; rejecting them is up
// to the caller.
func ExtractBasicCredentials(header string) (models.Credentials, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != basicScheme {
		return models.Credentials{}, false
	}

	decoded, err := base64.StdEncoding.DecodeString(fields[1])
	if err != nil || !utf8.Valid(decoded) {
		return models.Credentials{}, false
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return models.Credentials{}, false
	}

	return models.Credentials{Email: email, Password: password}, true
}

// ExtractSessionCookie returns the value of the cookie called name.
// It reports false when name is empty, r is nil or the cookie is absent.
func ExtractSessionCookie(r *http.Request, name string) (string, bool) {
	if r == nil || name == "" {
		return "", false
	}

	cookie, err := r.Cookie(name)
	if err != nil {
		return "", false
	}

	return cookie.Value, true
}

// presented reports whether r carries an Authorization header or the
// session cookie.
func presented(r *http.Request, cookieName string) bool {
	if r == nil {
		return false
	}
	if r.Header.Get(authorizationHeader) != "" {
		return true
	}
	_, ok := ExtractSessionCookie(r, cookieName)
	return ok
}
