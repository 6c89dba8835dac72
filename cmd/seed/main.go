package main

import (
	"github.com/irisdrone/tracker/config"
	"github.com/irisdrone/tracker/database"
	"github.com/irisdrone/tracker/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	db, err := database.Open(cfg.Database.URL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	// Tables must exist before the empty checks.
	if err := database.Migrate(db); err != nil {
		logging.Fatal().Err(err).Msg("Migration failed")
	}

	result, err := database.Seed(db, database.AdminCredentials{
		Username: cfg.Security.AdminUsername,
		Password: cfg.Security.AdminPassword,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Seed failed")
	}
	if result == (database.SeedResult{}) {
		logging.Info().Msg("All tables already populated, nothing to seed")
	}
}
