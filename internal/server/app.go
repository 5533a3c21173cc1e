// Package server initializes and runs the API server: it opens the database,
// applies migrations, provisions the bootstrap superuser and serves the HTTP
// API until interrupted.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avasiljevs/itemvault/internal/logging"
	"github.com/avasiljevs/itemvault/internal/server/config"
	"github.com/avasiljevs/itemvault/internal/server/httpapi"
	"github.com/avasiljevs/itemvault/internal/server/repositories/repomanager"
	"github.com/avasiljevs/itemvault/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	auth   *services.AuthService
	users  *services.UserService
	items  *services.ItemService
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		repos:  rm,
		auth:   services.NewAuthService(db, rm),
		users:  services.NewUserService(db, rm),
		items:  services.NewItemService(db, rm),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app...")
	app.initSignalHandler(cancelFunc)

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "error closing db", "error", err)
		}
	}()

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if _, err := app.users.EnsureSuperuser(ctx, app.config.FirstSuperuserEmail, app.config.FirstSuperuserPassword); err != nil {
		return fmt.Errorf("superuser bootstrap error: %w", err)
	}

	srv := httpapi.NewServer(app.config.Addr, app.config.CORSOrigins, app.logger, app.auth, app.users, app.items)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}
