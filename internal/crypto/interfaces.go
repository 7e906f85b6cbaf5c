package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
//
// Hash and Verify are CPU-bound and must not be called while holding a lock.
type PasswordHasher interface {
	// Hash produces a salted hash of password. Two calls with the same
	// password return different outputs. An empty password yields
	// [ErrEmptyPassword].
	Hash(password string) ([]byte, error)

	// Verify reports whether password matches hash. A mismatch is
	// (false, nil); a hash that cannot be parsed yields [ErrMalformedHash].
	Verify(password string, hash []byte) (bool, error)
}
