package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/irisdrone/tracker/models"
	"gorm.io/gorm"
)

// Store is the read side of the tracker schema. Every query runs with the
// caller's context so a cancelled request stops its statement.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migrations and tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// UserByUsername returns the user with the given username, or nil if none exists.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// Employees returns every employee ordered by id.
func (s *Store) Employees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	return employees, nil
}

// EmployeesByID returns the employee with the given id as a zero- or one-element slice.
func (s *Store) EmployeesByID(ctx context.Context, id int64) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Where("id = ?", id).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employee %d: %w", id, err)
	}
	return employees, nil
}

// AppUsage returns every application usage row ordered by id.
func (s *Store) AppUsage(ctx context.Context) ([]models.AppUsage, error) {
	var apps []models.AppUsage
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch application usage: %w", err)
	}
	return apps, nil
}

// WebsiteUsage returns every website usage row ordered by id.
func (s *Store) WebsiteUsage(ctx context.Context) ([]models.WebsiteUsage, error) {
	var sites []models.WebsiteUsage
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&sites).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch website usage: %w", err)
	}
	return sites, nil
}
