package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimasfh/profitbot/internal/adapters/database/pgsql"
	"github.com/dimasfh/profitbot/internal/core/services"
	"github.com/dimasfh/profitbot/internal/handlers"
	"github.com/dimasfh/profitbot/internal/middleware"
	"github.com/dimasfh/profitbot/internal/transport"
	"github.com/dimasfh/profitbot/pkg/config"
	"github.com/dimasfh/profitbot/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

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

	// Missing credentials are startup-fatal: exit before entering the
	// dispatch loop.
	if cfg.BotToken == "" {
		logger.Error("BOT_TOKEN is not set; cannot start the bot")
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		logger.Error("PGSQL_URL is not set; cannot start the bot")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		os.Exit(1)
	}

	// Wire the ledger: repository -> service -> dispatcher.
	txnRepo := pgsql.NewTransactionRepository(dbPool)
	ledgerService := services.NewLedgerService(txnRepo)
	dispatcher := handlers.NewDispatcher(ledgerService, logger, cfg.HistoryLimit)

	bot, err := transport.New(cfg.BotToken, dispatcher, logger, cfg.StoreTimeout, cfg.PollTimeout)
	if err != nil {
		logger.Error("Failed to initialize Telegram bot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Liveness endpoint for the hosting platform.
	go runHealthServer(cfg, dbPool, logger)

	logger.Info("Bot polling started", slog.String("port", cfg.Port))
	if err := bot.Run(ctx); err != nil {
		logger.Error("Bot polling stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Shutdown complete.")
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection on the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func runHealthServer(cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		return
	}

	healthHandler := handlers.NewHealthHandler(dbPool)
	r.GET("/healthz", healthHandler.Healthz)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Health server failed to run", slog.String("error", err.Error()))
	}
}
