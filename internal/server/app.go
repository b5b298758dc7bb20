// Package server initializes and runs the main application server. It opens
// the database, runs migrations, wires services to the HTTP API, and handles
// graceful shutdown.
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

	"github.com/mkravets/tasklist/internal/logging"
	"github.com/mkravets/tasklist/internal/server/config"
	"github.com/mkravets/tasklist/internal/server/httpapi"
	"github.com/mkravets/tasklist/internal/server/repositories/repomanager"
	"github.com/mkravets/tasklist/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	todoService *services.TodoService
}

func NewApp(cfg *config.Config) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	ts := services.NewTodoService(db, rm)

	return &App{config: cfg, logger: logger, db: db, userService: us, todoService: ts}, nil
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

	s := httpapi.NewServer(app.config, app.logger, app.userService, app.todoService)

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
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
