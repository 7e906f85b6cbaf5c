package session

import (
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Option configures a registry built by [NewRegistry].
type Option func(*registry)

// WithTTL sets the session lifetime. A non-positive ttl disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(r *registry) {
		if ttl < 0 {
			ttl = 0
		}
		r.ttl = ttl
	}
}

// WithClock replaces time.Now as the registry's source of time.
func WithClock(now func() time.Time) Option {
	return func(r *registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log *logger.Logger) Option {
	return func(r *registry) {
		if log != nil {
			r.logger = log
		}
	}
}

// WithIDGenerator replaces the random session id source.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(r *registry) {
		if gen != nil {
			r.newID = gen
		}
	}
}
