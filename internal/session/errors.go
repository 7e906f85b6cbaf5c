package session

import "errors"

var (
	// ErrEmptyUserID is returned by Create for an empty user id.
	ErrEmptyUserID = errors.New("user id is empty")

	// ErrSessionNotFound is returned by Resolve when the id is absent,
	// malformed or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned by a Backend when an id is already stored.
	ErrSessionExists = errors.New("session id already exists")

	// ErrStorage wraps failures of the durable backend.
	ErrStorage = errors.New("session storage error")

	// ErrIDSpaceExhausted is returned by Create when every generated id
	// collided with a stored one.
	ErrIDSpaceExhausted = errors.New("could not generate a unique session id")
)
