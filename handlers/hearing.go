package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetHearingsHandler returns hearings ordered by hearing date
func GetHearingsHandler(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !models.IsValidHearingStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hearing status filter")
	}

	hearings, err := services.GetHearings(db.DB, status)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch hearings")
	}
	return c.JSON(http.StatusOK, hearings)
}

// GetHearingHandler returns a single hearing by id
func GetHearingHandler(c echo.Context) error {
	hearing, err := services.GetHearingByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch hearing")
	}
	return c.JSON(http.StatusOK, hearing)
}

// CreateHearingHandler creates a new hearing
func CreateHearingHandler(c echo.Context) error {
	var req struct {
		CaseID        string `json:"case_id" form:"case_id"`
		CaseTitle     string `json:"case_title" form:"case_title"`
		HearingDate   string `json:"hearing_date" form:"hearing_date"`
		HearingTime   string `json:"hearing_time" form:"hearing_time"`
		CourtLocation string `json:"court_location" form:"court_location"`
		Judge         string `json:"judge" form:"judge"`
		Status        string `json:"status" form:"status"`
		Notes         string `json:"notes" form:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.CaseTitle == "" || req.HearingDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case_title and hearing_date are required")
	}
	if req.Status != "" && !models.IsValidHearingStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hearing status")
	}

	hearing := &models.Hearing{
		CaseID:        optional(req.CaseID),
		CaseTitle:     req.CaseTitle,
		HearingDate:   req.HearingDate,
		HearingTime:   optional(req.HearingTime),
		CourtLocation: optional(req.CourtLocation),
		Judge:         optional(req.Judge),
		Status:        req.Status,
		Notes:         optional(req.Notes),
	}
	if err := services.CreateHearing(db.DB, hearing); err != nil {
		return storeHTTPError(err, "Failed to create hearing")
	}
	return c.JSON(http.StatusCreated, hearing)
}

// UpdateHearingHandler applies a partial update to a hearing
func UpdateHearingHandler(c echo.Context) error {
	var req struct {
		CaseID        *string `json:"case_id" form:"case_id"`
		CaseTitle     *string `json:"case_title" form:"case_title"`
		HearingDate   *string `json:"hearing_date" form:"hearing_date"`
		HearingTime   *string `json:"hearing_time" form:"hearing_time"`
		CourtLocation *string `json:"court_location" form:"court_location"`
		Judge         *string `json:"judge" form:"judge"`
		Status        *string `json:"status" form:"status"`
		Notes         *string `json:"notes" form:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.CaseTitle != nil && *req.CaseTitle == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case_title cannot be empty")
	}
	if req.HearingDate != nil && *req.HearingDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hearing_date cannot be empty")
	}
	if req.Status != nil && !models.IsValidHearingStatus(*req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hearing status")
	}

	updates := map[string]interface{}{}
	applyString(updates, "case_id", req.CaseID, true)
	applyString(updates, "case_title", req.CaseTitle, false)
	applyString(updates, "hearing_date", req.HearingDate, false)
	applyString(updates, "hearing_time", req.HearingTime, true)
	applyString(updates, "court_location", req.CourtLocation, true)
	applyString(updates, "judge", req.Judge, true)
	applyString(updates, "status", req.Status, false)
	applyString(updates, "notes", req.Notes, true)

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateHearing(db.DB, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update hearing")
	}

	hearing, err := services.GetHearingByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch hearing")
	}
	return c.JSON(http.StatusOK, hearing)
}

// DeleteHearingHandler deletes a hearing
func DeleteHearingHandler(c echo.Context) error {
	if err := services.DeleteHearing(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete hearing")
	}
	return c.NoContent(http.StatusNoContent)
}
