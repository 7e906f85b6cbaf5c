package store

import "github.com/MKhiriev/go-auth-keeper/internal/logger"

// Repositories groups the repositories opened on one database.
type Repositories struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
}

// NewRepositories builds every repository over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
	}
}
