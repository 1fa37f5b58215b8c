package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"training-courses/internal/adapter/casemanagement"
	httpadapter "training-courses/internal/adapter/http"
	"training-courses/internal/adapter/postgres"
	"training-courses/internal/adapter/questionnaire"
	"training-courses/internal/adapter/rest"
	"training-courses/internal/adapter/templates"
	"training-courses/internal/adapter/usecase"
	"training-courses/internal/config"
	"training-courses/internal/core/port"
	"training-courses/internal/db"
	"training-courses/internal/telemetry"
	"training-courses/scenarios"
)

// main is the entry point of the training-courses service. It loads
// configuration, loads the training scenarios, optionally opens the run
// journal, then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		logger.Error("telemetry setup error", slog.Any("error", err))
		return
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// Scenarios are loaded once; the service does not start without them.
	var src fs.FS = scenarios.FS
	if cfg.Templates.Dir != "" {
		src = os.DirFS(cfg.Templates.Dir)
	}
	store := templates.NewStore(logger)
	if err = store.Load(src, cfg.Templates.TempDir); err != nil {
		logger.Error("failed to load training scenarios", slog.Any("error", err))
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to remove template folder", slog.Any("error", err))
		}
	}()

	var journal port.RunJournal
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		journal = postgres.NewJournalRepository(pool)
	} else {
		logger.Info("run journal disabled")
	}

	caseManagement := casemanagement.NewClient(
		rest.NewClient(cfg.CaseManagement.URL.String(), cfg.CaseManagement.Timeout, logger).
			WithExistsStatuses(cfg.CaseManagement.ExistsStatuses...), logger)
	questionnaireAPI := questionnaire.NewClient(
		rest.NewClient(cfg.Questionnaire.URL.String(), cfg.Questionnaire.Timeout, logger).
			WithExistsStatuses(cfg.Questionnaire.ExistsStatuses...), logger)

	publisher := usecase.NewPublisher(caseManagement, questionnaireAPI, cfg.Publish.Workers, logger)
	svc := usecase.NewTrainingUseCase(store, caseManagement, questionnaireAPI, publisher, journal, nil, logger)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	serveErr := make(chan error, 1)

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
