package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetCasePointsHandler returns case points, optionally filtered by status
func GetCasePointsHandler(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !models.IsValidCasePointStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid case point status filter")
	}

	points, err := services.GetCasePoints(db.DB, status)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch case points")
	}
	return c.JSON(http.StatusOK, points)
}

// GetCasePointHandler returns a single case point by id
func GetCasePointHandler(c echo.Context) error {
	point, err := services.GetCasePointByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch case point")
	}
	return c.JSON(http.StatusOK, point)
}

// CreateCasePointHandler creates a new case point
func CreateCasePointHandler(c echo.Context) error {
	var req struct {
		Title       string `json:"title" form:"title"`
		CaseID      string `json:"case_id" form:"case_id"`
		CaseTitle   string `json:"case_title" form:"case_title"`
		Status      string `json:"status" form:"status"`
		Description string `json:"description" form:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if req.Status != "" && !models.IsValidCasePointStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid case point status")
	}

	point := &models.CasePoint{
		Title:       req.Title,
		CaseID:      optional(req.CaseID),
		CaseTitle:   optional(req.CaseTitle),
		Status:      req.Status,
		Description: optional(req.Description),
	}
	if err := services.CreateCasePoint(db.DB, point); err != nil {
		return storeHTTPError(err, "Failed to create case point")
	}
	return c.JSON(http.StatusCreated, point)
}

// UpdateCasePointHandler applies a partial update to a case point
func UpdateCasePointHandler(c echo.Context) error {
	var req struct {
		Title       *string `json:"title" form:"title"`
		CaseID      *string `json:"case_id" form:"case_id"`
		CaseTitle   *string `json:"case_title" form:"case_title"`
		Status      *string `json:"status" form:"status"`
		Description *string `json:"description" form:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Title != nil && *req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title cannot be empty")
	}
	if req.Status != nil && !models.IsValidCasePointStatus(*req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid case point status")
	}

	updates := map[string]interface{}{}
	applyString(updates, "title", req.Title, false)
	applyString(updates, "case_id", req.CaseID, true)
	applyString(updates, "case_title", req.CaseTitle, true)
	applyString(updates, "status", req.Status, false)
	applyString(updates, "description", req.Description, true)

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateCasePoint(db.DB, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update case point")
	}

	point, err := services.GetCasePointByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch case point")
	}
	return c.JSON(http.StatusOK, point)
}

// DeleteCasePointHandler deletes a case point
func DeleteCasePointHandler(c echo.Context) error {
	if err := services.DeleteCasePoint(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete case point")
	}
	return c.NoContent(http.StatusNoContent)
}
