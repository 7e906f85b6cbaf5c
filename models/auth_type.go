package models

// AuthType selects how incoming requests are authenticated.
type AuthType string

const (
	// AuthNone disables enforcement: no request is ever authenticated.
	AuthNone AuthType = "none"
	// AuthBasic authenticates with an "Authorization: Basic" header.
	AuthBasic AuthType = "basic_auth"
	// AuthSession uses an in-memory session registry without expiration.
	AuthSession AuthType = "session_auth"
	// AuthSessionExp uses an in-memory session registry with expiration.
	AuthSessionExp AuthType = "session_exp_auth"
	// AuthSessionDB uses a database-backed session registry with expiration.
	AuthSessionDB AuthType = "session_db_auth"
)

// Valid reports whether t is a known authentication type.
func (t AuthType) Valid() bool {
	switch t {
	case AuthNone, AuthBasic, AuthSession, AuthSessionExp, AuthSessionDB:
		return true
	}
	return false
}

// UsesSessions reports whether t authenticates with a session cookie.
func (t AuthType) UsesSessions() bool {
	switch t {
	case AuthSession, AuthSessionExp, AuthSessionDB:
		return true
	}
	return false
}
