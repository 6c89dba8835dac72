package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/irisdrone/tracker/logging"
	"github.com/irisdrone/tracker/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the store named by databaseURL.
//
// postgres:// and postgresql:// URLs use the PostgreSQL driver. Anything else
// is SQLite, addressed the SQLAlchemy way: "sqlite:///tracker.db" is relative,
// "sqlite:////var/lib/tracker.db" is absolute and "sqlite://" is in-memory.
// A bare file path or ":memory:" is accepted as well.
func Open(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	dialector, driver := dialectorFor(databaseURL)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if driver == "sqlite" {
		// One connection keeps :memory: databases alive and serializes writers.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	logging.Info().Str("driver", driver).Msg("Database connected")
	return db, nil
}

func dialectorFor(databaseURL string) (gorm.Dialector, string) {
	lower := strings.ToLower(databaseURL)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return postgres.Open(databaseURL), "postgres"
	}
	return sqlite.Open(sqlitePath(databaseURL)), "sqlite"
}

func sqlitePath(databaseURL string) string {
	lower := strings.ToLower(databaseURL)
	switch {
	case strings.HasPrefix(lower, "sqlite:///"):
		return databaseURL[len("sqlite:///"):]
	case strings.HasPrefix(lower, "sqlite://"):
		if rest := databaseURL[len("sqlite://"):]; rest != "" {
			return rest
		}
		return ":memory:"
	}
	return databaseURL
}

// Migrate creates any missing tables. It never drops or rewrites data.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
