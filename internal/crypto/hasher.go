package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
)

// NewPasswordHasher builds the [PasswordHasher] named by cfg.PasswordHasher.
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	switch cfg.PasswordHasher {
	case config.HasherBcrypt, "":
		return NewBcryptHasher(cfg.BcryptCost), nil
	case config.HasherArgon2id:
		return NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, cfg.PasswordHasher)
	}
}
