package handlers

import (
	"net/http"
	"time"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// parseAppointmentTime accepts RFC 3339 timestamps from the scheduling form.
func parseAppointmentTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// GetAppointmentsHandler returns appointments ordered by start time
func GetAppointmentsHandler(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !models.IsValidAppointmentStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment status filter")
	}

	appointments, err := services.GetAppointments(db.DB, status)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch appointments")
	}
	return c.JSON(http.StatusOK, appointments)
}

// GetAppointmentHandler returns a single appointment by id
func GetAppointmentHandler(c echo.Context) error {
	apt, err := services.GetAppointmentByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch appointment")
	}
	return c.JSON(http.StatusOK, apt)
}

// CreateAppointmentHandler creates a new appointment
func CreateAppointmentHandler(c echo.Context) error {
	var req struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		ContactID   string `json:"contact_id" form:"contact_id"`
		StartTime   string `json:"start_time" form:"start_time"`
		EndTime     string `json:"end_time" form:"end_time"`
		Location    string `json:"location" form:"location"`
		MeetingURL  string `json:"meeting_url" form:"meeting_url"`
		Status      string `json:"status" form:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" || req.StartTime == "" || req.EndTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title, start_time and end_time are required")
	}
	if req.Status != "" && !models.IsValidAppointmentStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment status")
	}

	start, err := parseAppointmentTime(req.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_time must be an RFC 3339 timestamp")
	}
	end, err := parseAppointmentTime(req.EndTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end_time must be an RFC 3339 timestamp")
	}

	apt := &models.Appointment{
		Title:       req.Title,
		Description: optional(req.Description),
		ContactID:   optional(req.ContactID),
		StartTime:   start,
		EndTime:     end,
		Location:    optional(req.Location),
		MeetingURL:  optional(req.MeetingURL),
		Status:      req.Status,
	}
	if err := services.CreateAppointment(db.DB, apt); err != nil {
		if err == services.ErrInvalidTimeRange {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return storeHTTPError(err, "Failed to create appointment")
	}
	return c.JSON(http.StatusCreated, apt)
}

// UpdateAppointmentHandler applies a partial update to an appointment
func UpdateAppointmentHandler(c echo.Context) error {
	var req struct {
		Title       *string `json:"title" form:"title"`
		Description *string `json:"description" form:"description"`
		ContactID   *string `json:"contact_id" form:"contact_id"`
		StartTime   *string `json:"start_time" form:"start_time"`
		EndTime     *string `json:"end_time" form:"end_time"`
		Location    *string `json:"location" form:"location"`
		MeetingURL  *string `json:"meeting_url" form:"meeting_url"`
		Status      *string `json:"status" form:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Title != nil && *req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title cannot be empty")
	}
	if req.Status != nil && !models.IsValidAppointmentStatus(*req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment status")
	}

	updates := map[string]interface{}{}
	applyString(updates, "title", req.Title, false)
	applyString(updates, "description", req.Description, true)
	applyString(updates, "contact_id", req.ContactID, true)
	applyString(updates, "location", req.Location, true)
	applyString(updates, "meeting_url", req.MeetingURL, true)
	applyString(updates, "status", req.Status, false)
	if req.StartTime != nil {
		start, err := parseAppointmentTime(*req.StartTime)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "start_time must be an RFC 3339 timestamp")
		}
		updates["start_time"] = start
	}
	if req.EndTime != nil {
		end, err := parseAppointmentTime(*req.EndTime)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "end_time must be an RFC 3339 timestamp")
		}
		updates["end_time"] = end
	}

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateAppointment(db.DB, id, updates); err != nil {
		if err == services.ErrInvalidTimeRange {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return storeHTTPError(err, "Failed to update appointment")
	}

	apt, err := services.GetAppointmentByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch appointment")
	}
	return c.JSON(http.StatusOK, apt)
}

// DeleteAppointmentHandler deletes an appointment
func DeleteAppointmentHandler(c echo.Context) error {
	if err := services.DeleteAppointment(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete appointment")
	}
	return c.NoContent(http.StatusNoContent)
}
