// Package server initializes and runs the application: it opens the
// database, applies schema migrations, wires the services, and starts the
// HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/godsapp/freizeit-server/internal/logging"
	"github.com/godsapp/freizeit-server/internal/server/config"
	"github.com/godsapp/freizeit-server/internal/server/httpapi"
	"github.com/godsapp/freizeit-server/internal/server/repositories/repomanager"
	"github.com/godsapp/freizeit-server/internal/server/services"
)

type App struct {
	config             *config.Config
	logger             logging.Logger
	db                 *sql.DB
	authService        *services.AuthService
	userService        *services.UserService
	freizeitService    *services.FreizeitService
	participantService *services.ParticipantService
	accessService      *services.AccessRequestService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &App{
		config:             cfg,
		logger:             logger,
		db:                 db,
		authService:        services.NewAuthService(db, m, cfg),
		userService:        services.NewUserService(db, m),
		freizeitService:    services.NewFreizeitService(db, m, cfg),
		participantService: services.NewParticipantService(db, m),
		accessService:      services.NewAccessRequestService(db, m),
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.Addr, app.logger,
		app.authService, app.userService, app.freizeitService,
		app.participantService, app.accessService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
