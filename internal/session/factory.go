package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// ErrNoRepository is returned by New when a durable registry is requested
// without a session repository.
var ErrNoRepository = errors.New("durable session registry needs a session repository")

// New builds the registry used by authType:
//   - session_auth:     memory, never expires
//   - session_exp_auth: memory, ttl
//   - session_db_auth:  durable over repo, ttl
//   - none, basic_auth: memory, ttl (sessions are still issued by login)
//
// opts are applied after the lifetime, so a WithTTL in opts wins.
func New(authType models.AuthType, repo store.SessionRepository, ttl time.Duration, opts ...Option) (Registry, error) {
	switch authType {
	case models.AuthSession:
		return NewRegistry(NewMemoryBackend(), append([]Option{WithTTL(0)}, opts...)...), nil
	case models.AuthSessionExp, models.AuthNone, models.AuthBasic:
		return NewRegistry(NewMemoryBackend(), append([]Option{WithTTL(ttl)}, opts...)...), nil
	case models.AuthSessionDB:
		if repo == nil {
			return nil, ErrNoRepository
		}
		return NewRegistry(NewDurableBackend(repo), append([]Option{WithTTL(ttl)}, opts...)...), nil
	default:
		return nil, fmt.Errorf("unknown auth type %q", authType)
	}
}
