package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"metrics-report/internal/aggregators"
	internalhttp "metrics-report/internal/http"
	"metrics-report/internal/shared/configs"
	"metrics-report/internal/shared/loggers"
	"metrics-report/internal/shared/sqldb"
	"metrics-report/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *sql.DB
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "metrics-report").
		Logger()

	// Project -> metrics table catalog, validated up front
	catalog, err := stores.NewProjectCatalog(config.Reports.Projects)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize project catalog: %w", err)
	}

	// MySQL row source, pinged with bounded retry
	db, err := sqldb.Open(sqldb.Config{
		Host:              config.Database.Host,
		Port:              config.Database.Port,
		User:              config.Database.User,
		Password:          config.Database.Password,
		Name:              config.Database.Name,
		MaxOpenConns:      config.Database.MaxOpenConns,
		MaxIdleConns:      config.Database.MaxIdleConns,
		ConnMaxLifetime:   config.Database.ConnMaxLifetimeDuration(),
		ConnectAttempts:   config.Database.ConnectAttempts,
		ConnectRetryDelay: config.Database.ConnectRetryDelayDuration(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize report service
	rowStore := stores.NewMetricRowStore(sqldb.New(db))
	summaryBuilder := aggregators.NewSummaryBuilder()
	dayReportBuilder := aggregators.NewDayReportBuilder()
	reportService := aggregators.NewReportService(catalog, rowStore, summaryBuilder, dayReportBuilder)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, config.Reports.DefaultProject, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		db:        db,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting metrics-report service on port %d (log_level=%s, database=%s, default_project=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Database.Name,
			app.config.Reports.DefaultProject)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Close database pool
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	app.appLogger.Info().Msg("Database connection closed")

	return nil
}
