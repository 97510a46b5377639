package handlers

import (
	"fmt"
	"net/http"
	"time"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetContactsHandler returns all contacts, newest first
func GetContactsHandler(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !models.IsValidContactStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid contact status filter")
	}

	contacts, err := services.GetContacts(db.DB, status)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch contacts")
	}
	return c.JSON(http.StatusOK, contacts)
}

// GetContactHandler returns a single contact by id
func GetContactHandler(c echo.Context) error {
	contact, err := services.GetContactByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch contact")
	}
	return c.JSON(http.StatusOK, contact)
}

// CreateContactHandler creates a new contact
func CreateContactHandler(c echo.Context) error {
	var req struct {
		FirstName string   `json:"first_name" form:"first_name"`
		LastName  string   `json:"last_name" form:"last_name"`
		Email     string   `json:"email" form:"email"`
		Phone     string   `json:"phone" form:"phone"`
		Company   string   `json:"company" form:"company"`
		Status    string   `json:"status" form:"status"`
		Source    string   `json:"source" form:"source"`
		Address   string   `json:"address" form:"address"`
		City      string   `json:"city" form:"city"`
		State     string   `json:"state" form:"state"`
		Zip       string   `json:"zip" form:"zip"`
		Country   string   `json:"country" form:"country"`
		Notes     string   `json:"notes" form:"notes"`
		Tags      []string `json:"tags" form:"tags"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	// Required fields block the insert before any store call
	if req.FirstName == "" || req.LastName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "first_name and last_name are required")
	}
	if req.Status != "" && !models.IsValidContactStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid contact status")
	}

	contact := &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     optional(req.Email),
		Phone:     optional(req.Phone),
		Company:   optional(req.Company),
		Status:    req.Status,
		Source:    optional(req.Source),
		Address:   optional(req.Address),
		City:      optional(req.City),
		State:     optional(req.State),
		Zip:       optional(req.Zip),
		Country:   optional(req.Country),
		Notes:     optional(req.Notes),
		Tags:      req.Tags,
	}

	if err := services.CreateContact(db.DB, contact); err != nil {
		return storeHTTPError(err, "Failed to create contact")
	}
	return c.JSON(http.StatusCreated, contact)
}

// UpdateContactHandler applies a partial update to a contact
func UpdateContactHandler(c echo.Context) error {
	var req struct {
		FirstName *string `json:"first_name" form:"first_name"`
		LastName  *string `json:"last_name" form:"last_name"`
		Email     *string `json:"email" form:"email"`
		Phone     *string `json:"phone" form:"phone"`
		Company   *string `json:"company" form:"company"`
		Status    *string `json:"status" form:"status"`
		Source    *string `json:"source" form:"source"`
		Address   *string `json:"address" form:"address"`
		City      *string `json:"city" form:"city"`
		State     *string `json:"state" form:"state"`
		Zip       *string `json:"zip" form:"zip"`
		Country   *string `json:"country" form:"country"`
		Notes     *string `json:"notes" form:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.FirstName != nil && *req.FirstName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "first_name cannot be empty")
	}
	if req.LastName != nil && *req.LastName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "last_name cannot be empty")
	}
	if req.Status != nil && !models.IsValidContactStatus(*req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid contact status")
	}

	updates := map[string]interface{}{}
	applyString(updates, "first_name", req.FirstName, false)
	applyString(updates, "last_name", req.LastName, false)
	applyString(updates, "email", req.Email, true)
	applyString(updates, "phone", req.Phone, true)
	applyString(updates, "company", req.Company, true)
	applyString(updates, "status", req.Status, false)
	applyString(updates, "source", req.Source, true)
	applyString(updates, "address", req.Address, true)
	applyString(updates, "city", req.City, true)
	applyString(updates, "state", req.State, true)
	applyString(updates, "zip", req.Zip, true)
	applyString(updates, "country", req.Country, true)
	applyString(updates, "notes", req.Notes, true)

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateContact(db.DB, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update contact")
	}

	contact, err := services.GetContactByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch contact")
	}
	return c.JSON(http.StatusOK, contact)
}

// DeleteContactHandler deletes a contact after the client-side confirmation
func DeleteContactHandler(c echo.Context) error {
	if err := services.DeleteContact(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete contact")
	}
	return c.NoContent(http.StatusNoContent)
}

// MoveContactStageHandler places a contact on a pipeline board column
func MoveContactStageHandler(c echo.Context) error {
	var req struct {
		StageID string `json:"stage_id" form:"stage_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.StageID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "stage_id is required")
	}

	if err := services.MoveContactToStage(db.DB, c.Param("id"), req.StageID); err != nil {
		return storeHTTPError(err, "Failed to move contact")
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportContactsHandler streams all contacts as an Excel workbook
func ExportContactsHandler(c echo.Context) error {
	buf, err := services.ExportContactsExcel(db.DB)
	if err != nil {
		return storeHTTPError(err, "Failed to export contacts")
	}

	fileName := fmt.Sprintf("contacts_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
