package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/irisdrone/tracker/analytics"
	"github.com/irisdrone/tracker/logging"
	"github.com/irisdrone/tracker/models"
)

type EmployeeResponse struct {
	ID              uint                  `json:"id"`
	Name            string                `json:"name"`
	Status          models.EmployeeStatus `json:"status"`
	ActiveTime      float64               `json:"activeTime"`
	IdleTime        float64               `json:"idleTime"`
	Productivity    int                   `json:"productivity"`
	CurrentActivity string                `json:"currentActivity"`
	LastActive      string                `json:"lastActive"`
}

func toEmployeeResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		Status:          e.Status,
		ActiveTime:      e.ActiveTime,
		IdleTime:        e.IdleTime,
		Productivity:    e.Productivity,
		CurrentActivity: e.CurrentActivity,
		LastActive:      e.LastActive.UTC().Format(time.RFC3339),
	}
}

// GetEmployees handles GET /api/employees
func (h *Handler) GetEmployees(c *gin.Context) {
	employees, err := h.store.Employees(c.Request.Context())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to fetch employees")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	result := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		result[i] = toEmployeeResponse(e)
	}
	c.JSON(http.StatusOK, gin.H{"employees": result})
}

// GetProductivity handles GET /api/analytics/productivity
func (h *Handler) GetProductivity(c *gin.Context) {
	employees, err := h.store.Employees(c.Request.Context())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to fetch employees")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch productivity"})
		return
	}

	c.JSON(http.StatusOK, analytics.Summarize(employees))
}
