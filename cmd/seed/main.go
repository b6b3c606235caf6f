package main

import (
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spiceroutes/spiceroutes-api/internal/config"
	"github.com/spiceroutes/spiceroutes-api/internal/database"
	"github.com/spiceroutes/spiceroutes-api/internal/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	log.SetFormatter(&log.JSONFormatter{})

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	db, err := database.InitDatabase(database.FromAppConfig(conf))
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	loader := seed.NewLoader(db, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := loader.Run(); err != nil {
		log.WithError(err).Fatal("Seed failed")
	}
}
