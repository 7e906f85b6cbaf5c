package models

// Columns of the users table that may be used for lookups and updates.
const (
	UserFieldID             = "id"
	UserFieldEmail          = "email"
	UserFieldHashedPassword = "hashed_password"
	UserFieldSessionID      = "session_id"
	UserFieldResetToken     = "reset_token"
)

// UserFilter is a single-column equality predicate used to find a user.
// Only id, email, session_id and reset_token are searchable.
type UserFilter struct {
	Field string
	Value string
}

// ByID returns a filter matching the user with the given id.
func ByID(id string) UserFilter { return UserFilter{Field: UserFieldID, Value: id} }

// ByEmail returns a filter matching the user with the given email.
func ByEmail(email string) UserFilter { return UserFilter{Field: UserFieldEmail, Value: email} }

// BySessionID returns a filter matching the user whose session slot holds id.
func BySessionID(id string) UserFilter { return UserFilter{Field: UserFieldSessionID, Value: id} }

// ByResetToken returns a filter matching the owner of a reset token.
func ByResetToken(token string) UserFilter {
	return UserFilter{Field: UserFieldResetToken, Value: token}
}

// Searchable reports whether the filter targets a searchable column.
func (f UserFilter) Searchable() bool {
	switch f.Field {
	case UserFieldID, UserFieldEmail, UserFieldSessionID, UserFieldResetToken:
		return true
	}
	return false
}

// UserChanges maps users columns to their new values. A nil value clears a
// nullable column. Keys outside the updatable set are rejected by the store.
type UserChanges map[string]any

// Updatable reports whether key names an updatable users column.
func Updatable(key string) bool {
	switch key {
	case UserFieldEmail, UserFieldHashedPassword, UserFieldSessionID, UserFieldResetToken:
		return true
	}
	return false
}
