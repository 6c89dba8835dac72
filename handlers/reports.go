package handlers

import (
	"bytes"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/irisdrone/tracker/analytics"
	"github.com/irisdrone/tracker/logging"
	"github.com/irisdrone/tracker/models"
)

// ReportRequest is the body of POST /api/reports/generate. Both fields are
// optional and kept raw because clients send employeeId as number or string.
type ReportRequest struct {
	EmployeeID json.RawMessage `json:"employeeId"`
	Range      json.RawMessage `json:"range"`
}

// employeeSelector says which employees a report covers.
type employeeSelector struct {
	all  bool
	none bool
	id   int64
}

// parseEmployeeSelector treats absent, null, false, 0 and "" as "everyone".
// true compares equal to id 1 the way SQL booleans do. A value that cannot
// name a row selects nobody.
func parseEmployeeSelector(raw json.RawMessage) employeeSelector {
	if len(raw) == 0 {
		return employeeSelector{all: true}
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return employeeSelector{none: true}
	}

	switch id := v.(type) {
	case nil:
		return employeeSelector{all: true}
	case bool:
		if !id {
			return employeeSelector{all: true}
		}
		return employeeSelector{id: 1}
	case float64:
		if id == 0 {
			return employeeSelector{all: true}
		}
		if id > 0 && id == math.Trunc(id) && id <= math.MaxUint32 {
			return employeeSelector{id: int64(id)}
		}
	case string:
		if id == "" {
			return employeeSelector{all: true}
		}
		if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > 0 {
			return employeeSelector{id: n}
		}
	}
	return employeeSelector{none: true}
}

// parseRange echoes whatever the client sent, defaulting to "today".
func parseRange(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return analytics.DefaultRange
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return analytics.DefaultRange
	}
	return v
}

// GenerateReport handles POST /api/reports/generate
func (h *Handler) GenerateReport(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var req ReportRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	sel := parseEmployeeSelector(req.EmployeeID)
	var employees []models.Employee
	switch {
	case sel.all:
		employees, err = h.store.Employees(c.Request.Context())
	case sel.none:
	default:
		employees, err = h.store.EmployeesByID(c.Request.Context(), sel.id)
	}
	if err != nil {
		logging.Error().Err(err).Msg("Failed to fetch employees for report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, analytics.BuildReport(employees, parseRange(req.Range)))
}
