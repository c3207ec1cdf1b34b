package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/prospectr-app/prospectr/internal/clients"
	"github.com/prospectr-app/prospectr/internal/core/services"
	"github.com/prospectr-app/prospectr/internal/handlers"
	"github.com/prospectr-app/prospectr/internal/jobs"
	"github.com/prospectr-app/prospectr/internal/middleware"
	"github.com/prospectr-app/prospectr/internal/platform/config"
	"github.com/prospectr-app/prospectr/internal/repositories/database/pgsql"
	"github.com/prospectr-app/prospectr/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	clientProvider, err := buildClients(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize provider clients", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewContainer(cfg, repos, clientProvider)

	if cfg.JobsEnabled {
		scheduler, err := jobs.NewScheduler(cfg, serviceContainer.Sync, logger)
		if err != nil {
			logger.Error("Failed to initialize scheduler", slog.String("error", err.Error()))
			os.Exit(1)
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("Job scheduler started", slog.String("schedule", cfg.JobSchedule))
	} else {
		logger.Info("Job scheduler disabled")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildClients authenticates against the three providers up front so bad
// credentials fail the boot, not the first job pass.
func buildClients(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*services.ClientProvider, error) {
	crm, err := clients.NewSalesforceClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("CRM session established")

	orgSearch, err := clients.NewDiscoverOrgClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Org-search session established")

	return &services.ClientProvider{
		CRM:       crm,
		OrgSearch: orgSearch,
		Enrich:    clients.NewLushaClient(cfg),
	}, nil
}

// runMigrations applies all pending schema migrations through a temporary
// database/sql connection on the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
