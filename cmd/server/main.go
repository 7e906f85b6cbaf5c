package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/server"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/session"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/workers"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-auth-keeper")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().
		Str("auth_type", string(cfg.App.AuthType)).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnect(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	hasher, err := crypto.NewPasswordHasher(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	registry, err := session.New(cfg.App.AuthType, repos.SessionRepository, cfg.App.SessionTTL(), session.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session registry")
	}

	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(repos, registry, hasher, cfg.App, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var bg *workers.Workers
	if cfg.App.AuthType == models.AuthSessionDB {
		bg = workers.NewWorkers(
			workers.NewSessionSweeper(repos.SessionRepository, cfg.App.SessionTTL(), cfg.Storage.SweepInterval, log),
		)
	} else {
		bg = workers.NewWorkers()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		bg.Run(ctx)
	}()

	srv.RunServer()

	cancel()
	<-done
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
