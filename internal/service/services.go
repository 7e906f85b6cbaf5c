package service

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/session"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over the repositories, the session
// registry chosen for the configured auth type and the password hasher.
func NewServices(
	repos *store.Repositories,
	sessions session.Registry,
	hasher crypto.PasswordHasher,
	cfg config.App,
	info models.BuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, sessions, hasher, cfg, logger),
		AppInfoService: appInfo,
	}, nil
}
