package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spiceroutes/spiceroutes-api/internal/config"
	"github.com/spiceroutes/spiceroutes-api/internal/database"
	"github.com/spiceroutes/spiceroutes-api/internal/server"
	"github.com/spiceroutes/spiceroutes-api/internal/session"
	"gorm.io/gorm"
)

func main() {
	loadDotenvFile()
	setUpLogger()

	configuration := loadConfig()

	db := setupDatabase(configuration)
	sessions := setupSessions(configuration)

	srv := server.New(configuration, server.Deps{DB: db, Sessions: sessions})

	// SIGINT/SIGTERM cancel the context, which drains the listener before
	// the stores are closed.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := srv.Run(ctx)

	closeDatabase(db)
	if closeErr := sessions.Close(); closeErr != nil {
		log.WithError(closeErr).Warn("Failed to close session store")
	}

	if err != nil {
		log.WithError(err).Error("Server exited with error")
		os.Exit(1)
	}
	log.Info("Server stopped")
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	return conf
}

// setupDatabase connects to the relational store and runs migrations.
// A connection or migration failure is fatal.
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.FromAppConfig(conf))
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		closeDatabase(db)
		log.WithError(err).Fatal("Failed to migrate database")
	}
	return db
}

// setupSessions connects the session store. When the cache store is
// unreachable the service starts in degraded mode with an in-process
// store instead of refusing to boot.
func setupSessions(conf *config.Config) *session.Manager {
	store, err := session.NewRedisStore(conf.RedisURL)
	if err != nil {
		log.WithError(err).Warn("Cache store unreachable, using in-memory sessions (not suitable for multiple instances)")
		return session.NewManager(session.NewMemoryStore(), conf.IsProduction())
	}
	log.Info("Connected to session cache store")
	return session.NewManager(store, conf.IsProduction())
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Warn("Failed to access underlying database handle")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("Failed to close database connection")
	}
}
