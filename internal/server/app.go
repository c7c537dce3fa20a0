// Package server initializes and runs the application: it opens the
// database, applies migrations, wires the services, and starts the HTTP
// server with graceful shutdown.
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

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/logging"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/config"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/httpapi"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/repositories/repomanager"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	categoryService *services.CategoryService
	productService  *services.ProductService
	uploadService   *services.UploadService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		userService:     services.NewUserService(db, rm, cfg),
		categoryService: services.NewCategoryService(db, rm),
		productService:  services.NewProductService(db, rm),
		uploadService:   services.NewUploadService(cfg),
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

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger,
		app.userService.Tokens(), app.userService,
		app.categoryService, app.productService, app.uploadService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(parent context.Context) {

	ctx, cancelFunc := context.WithCancel(parent)
	defer cancelFunc()

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
