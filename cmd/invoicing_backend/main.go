package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/invoicing_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/invoicing_app/internal/core/services"
	"github.com/SscSPs/invoicing_app/internal/handlers"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
	"github.com/SscSPs/invoicing_app/pkg/database"
	"github.com/SscSPs/invoicing_app/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Invoicing API
// @version 1.0
// @description Resources, employees and system endpoints of the invoicing backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger config comes from cfg, so fall back to a default logger here
		l := logger.New(logger.Config{})
		l.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.New(logger.Config{Env: cfg.Env(), Level: cfg.LogLevel})

	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database pool")
	}
	defer database.ClosePgxPool(dbPool)
	log.Info().Msg("Database connection pool established.")

	if err := runMigrations(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	limiterInstance, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.RateLimit).Msg("Invalid rate limit")
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(log),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(limiterInstance),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos)
	handlers.RegisterRoutes(r, cfg, container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env()).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to run")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server stopped")
}

// runMigrations applies every pending "up" migration over a short-lived
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, log zerolog.Logger) error {
	log.Info().Str("path", cfg.MigrationsPath).Msg("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("Error closing migration DB connection")
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		return errors.Join(sourceErr, dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		log.Info().Msg("No new migrations to apply.")
	} else {
		log.Info().Msg("Database migrations applied successfully.")
	}
	return nil
}
