package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetPipelineHandler returns the board columns with their contacts.
// An empty board is seeded with the default stages first.
func GetPipelineHandler(c echo.Context) error {
	stages, err := services.GetPipelineStages(db.DB)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch pipeline")
	}
	return c.JSON(http.StatusOK, stages)
}
