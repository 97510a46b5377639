package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetDashboardHandler returns the dashboard counters and recent activity
func GetDashboardHandler(c echo.Context) error {
	stats, err := services.GetDashboardStats(db.DB)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch dashboard stats")
	}
	return c.JSON(http.StatusOK, stats)
}
