package http

import (
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/gate"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

type Handler struct {
	services      *service.Services
	authenticator gate.Authenticator

	// sessionName is the name of the session cookie.
	sessionName string

	// singleSession makes DELETE /sessions log the owner out entirely.
	singleSession bool

	// excludedPaths are the /api/v1 paths served without authentication.
	excludedPaths []string

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	authenticator gate.Authenticator,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		authenticator:  authenticator,
		sessionName:    cfg.App.SessionName,
		singleSession:  cfg.App.SingleSession,
		excludedPaths:  cfg.App.ExcludedPaths,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
