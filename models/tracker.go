package models

import (
	"time"
)

// EmployeeStatus enum
type EmployeeStatus string

const (
	StatusActive  EmployeeStatus = "active"
	StatusIdle    EmployeeStatus = "idle"
	StatusOffline EmployeeStatus = "offline"
)

// UsageCategory enum
type UsageCategory string

const (
	CategoryProductive   UsageCategory = "productive"
	CategoryNeutral      UsageCategory = "neutral"
	CategoryUnproductive UsageCategory = "unproductive"
)

// Employee is a tracked member of staff. Times are in hours.
type Employee struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"size:100;not null" json:"name"`
	Status          EmployeeStatus `gorm:"size:20;default:offline" json:"status"`
	ActiveTime      float64        `gorm:"default:0" json:"activeTime"`
	IdleTime        float64        `gorm:"default:0" json:"idleTime"`
	Productivity    int            `gorm:"default:0" json:"productivity"`
	CurrentActivity string         `gorm:"size:200;default:''" json:"currentActivity"`
	LastActive      time.Time      `json:"lastActive"`
}

func (Employee) TableName() string {
	return "employees"
}

// AppUsage aggregates time spent in a desktop application
type AppUsage struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	AppName   string        `gorm:"size:100;not null" json:"app"`
	TimeSpent float64       `gorm:"default:0" json:"time"`
	Category  UsageCategory `gorm:"size:50;default:neutral" json:"category"`
	Icon      string        `gorm:"size:10;default:💻" json:"icon"`
}

func (AppUsage) TableName() string {
	return "app_usages"
}

// WebsiteUsage aggregates time spent on a website
type WebsiteUsage struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	URL       string        `gorm:"column:url;size:200;not null" json:"url"`
	TimeSpent float64       `gorm:"default:0" json:"time"`
	Category  UsageCategory `gorm:"size:50;default:neutral" json:"category"`
	Visits    int           `gorm:"default:0" json:"visits"`
}

func (WebsiteUsage) TableName() string {
	return "website_usages"
}

// All returns every model managed by the tracker schema, in creation order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Employee{},
		&AppUsage{},
		&WebsiteUsage{},
	}
}
