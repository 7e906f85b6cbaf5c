package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when inserting or updating a user
	// violates the unique constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches a lookup or update.
	ErrUserNotFound = errors.New("no user was found")

	// ErrInvalidField is returned when a lookup filter or an update targets
	// a column that is not searchable or updatable.
	ErrInvalidField = errors.New("invalid user field")

	// ErrSessionAlreadyExists is returned when a session id collides with a
	// stored one.
	ErrSessionAlreadyExists = errors.New("session already exists")

	// ErrSessionNotFound is returned when no session has the requested id.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionSlotChanged is returned by SwapSessionSlot when the slot no
	// longer holds the expected value or the user is gone.
	ErrSessionSlotChanged = errors.New("session slot was changed concurrently")

	// ErrStorageTimeout is returned when a call exceeds the configured
	// storage timeout or its context is cancelled. It is transient.
	ErrStorageTimeout = errors.New("storage call timed out")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver other
	// than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
