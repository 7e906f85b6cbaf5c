package handler

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/gate"
	"github.com/MKhiriev/go-auth-keeper/internal/handler/http"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the authenticator for the configured auth type and the
// transport handlers on top of it.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	authenticator, err := gate.NewAuthenticator(cfg.App, services.AuthService)
	if err != nil {
		return nil, fmt.Errorf("error creating authenticator: %w", err)
	}
	logger.Info().Str("auth_type", string(cfg.App.AuthType)).Msg("authenticator created")

	return &Handlers{
		HTTP: http.NewHandler(services, authenticator, cfg, logger),
	}, nil
}
