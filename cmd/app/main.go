package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier/cmd"
	httpapi "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var gormDB *gorm.DB
	if configs.UsesDatabase() {
		db, err := postgres.Open(configs.DBConn().DSN())
		if err != nil {
			log.Fatalf("Error opening database: %v", err)
		}
		gormDB = db
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Hydrate(ctx); err != nil {
		log.Fatalf("Error loading atelier %s: %v", configs.AtelierID, err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	startWebServer(ctx, &app, logger, configs.HTTPPort)

	jobManager.StopAll()
	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = app.Flush(flushCtx); err != nil {
		logger.ErrorContext(flushCtx, "final flush failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}
	config := cmd.Config{
		HTTPPort:            os.Getenv("HTTP_PORT"),
		AtelierID:           os.Getenv("ATELIER_ID"),
		RemoteStoreURL:      os.Getenv("REMOTE_STORE_URL"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           os.Getenv("DB_SSLMODE"),
		SyncDebounceMs:      os.Getenv("SYNC_DEBOUNCE_MS"),
		PipelineTransitions: os.Getenv("PIPELINE_TRANSITIONS"),
	}
	if config.AtelierID == "" {
		log.Fatalf("ATELIER_ID is required")
	}
	return config
}

// startWebServer blocks until ctx is cancelled or the server fails.
func startWebServer(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(httpapi.RequestLogger(logger))
	app.CreateServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
