package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spinwager/casino-backend/config"
	httpserver "github.com/spinwager/casino-backend/internal/adapter/http/server"
	"github.com/spinwager/casino-backend/internal/adapter/postgres"
	"github.com/spinwager/casino-backend/internal/service/auth"
	"github.com/spinwager/casino-backend/pkg/logger"
	postgresclient "github.com/spinwager/casino-backend/pkg/postgres"
)

// App is the composition root: it builds the credential store, token service
// and auth service once and passes them explicitly to the HTTP server.
type App struct {
	postgresDB *postgresclient.PostgreDB
	httpServer *httpserver.API

	cfg config.Config
	log logger.Logger
}

func New(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	db, err := postgresclient.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := postgres.Migrate(cfg.Database.GetMigrateDSN()); err != nil {
		db.Pool.Close()
		return nil, err
	}

	// repositories
	userRepo := postgres.NewUserRepo(db.Pool)

	// services
	tokenSvc := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authSvc := auth.NewAuthService(userRepo, tokenSvc, log)

	server, err := httpserver.New(cfg, authSvc, authSvc, log)
	if err != nil {
		db.Pool.Close()
		return nil, err
	}

	return &App{
		postgresDB: db,
		httpServer: server,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "casino backend closed")
	}()

	errCh := make(chan error, 1)
	a.httpServer.Run(ctx, errCh)

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "service started")
	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error(ctx, "failed to shutdown HTTP server", err)
	}

	a.postgresDB.Pool.Close()
}
