package database

import (
	"fmt"
	"time"

	"github.com/irisdrone/tracker/auth"
	"github.com/irisdrone/tracker/logging"
	"github.com/irisdrone/tracker/models"
	"gorm.io/gorm"
)

// AdminCredentials is the bootstrap login created on an empty users table.
type AdminCredentials struct {
	Username string
	Password string
}

// SeedResult reports how many rows each table received.
type SeedResult struct {
	Users     int
	Employees int
	Apps      int
	Websites  int
}

// Seed inserts the sample data set into every empty table.
// Idempotent: tables that already hold rows are left untouched.
//
// Seeding is not coordinated across processes. Two instances starting
// against the same empty database can both insert.
func Seed(db *gorm.DB, admin AdminCredentials) (SeedResult, error) {
	var result SeedResult
	if db == nil {
		return result, fmt.Errorf("database connection is nil")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		empty, err := isEmpty(tx, &models.User{})
		if err != nil {
			return err
		}
		if empty {
			hash, err := auth.HashPassword(admin.Password)
			if err != nil {
				return err
			}
			if err := tx.Create(&models.User{Username: admin.Username, Password: hash}).Error; err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}
			result.Users = 1
		}

		if result.Employees, err = seedTable(tx, sampleEmployees(time.Now().UTC())); err != nil {
			return err
		}
		if result.Apps, err = seedTable(tx, sampleApps()); err != nil {
			return err
		}
		if result.Websites, err = seedTable(tx, sampleWebsites()); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	logging.Info().
		Int("users", result.Users).
		Int("employees", result.Employees).
		Int("apps", result.Apps).
		Int("websites", result.Websites).
		Msg("Seed completed")
	return result, nil
}

func seedTable[T any](tx *gorm.DB, rows []T) (int, error) {
	var zero T
	empty, err := isEmpty(tx, &zero)
	if err != nil || !empty {
		return 0, err
	}
	if err := tx.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to seed %T: %w", zero, err)
	}
	return len(rows), nil
}

func isEmpty(tx *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count %T: %w", model, err)
	}
	return count == 0, nil
}

func sampleEmployees(now time.Time) []models.Employee {
	return []models.Employee{
		{Name: "Sarah Johnson", Status: models.StatusActive, ActiveTime: 6.5, IdleTime: 0.5, Productivity: 92, CurrentActivity: "VS Code - React Development", LastActive: now},
		{Name: "Michael Chen", Status: models.StatusIdle, ActiveTime: 5.8, IdleTime: 1.2, Productivity: 78, CurrentActivity: "Idle for 8 minutes", LastActive: now},
		{Name: "Emily Davis", Status: models.StatusActive, ActiveTime: 6.2, IdleTime: 0.8, Productivity: 88, CurrentActivity: "Figma - UI Design", LastActive: now},
		{Name: "James Wilson", Status: models.StatusActive, ActiveTime: 7.1, IdleTime: 0.4, Productivity: 95, CurrentActivity: "Chrome - Documentation", LastActive: now},
		{Name: "Lisa Brown", Status: models.StatusOffline, ActiveTime: 4.5, IdleTime: 0.5, Productivity: 65, CurrentActivity: "Not clocked in", LastActive: now},
	}
}

func sampleApps() []models.AppUsage {
	return []models.AppUsage{
		{AppName: "VS Code", TimeSpent: 4.5, Category: models.CategoryProductive, Icon: "💻"},
		{AppName: "Chrome", TimeSpent: 3.2, Category: models.CategoryNeutral, Icon: "🌐"},
		{AppName: "Slack", TimeSpent: 1.8, Category: models.CategoryNeutral, Icon: "💬"},
		{AppName: "Figma", TimeSpent: 2.5, Category: models.CategoryProductive, Icon: "🎨"},
	}
}

func sampleWebsites() []models.WebsiteUsage {
	return []models.WebsiteUsage{
		{URL: "github.com", TimeSpent: 2.5, Category: models.CategoryProductive, Visits: 45},
		{URL: "stackoverflow.com", TimeSpent: 1.8, Category: models.CategoryProductive, Visits: 32},
		{URL: "gmail.com", TimeSpent: 1.2, Category: models.CategoryNeutral, Visits: 28},
	}
}
