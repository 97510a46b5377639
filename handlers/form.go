package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetFormsHandler returns all intake forms
func GetFormsHandler(c echo.Context) error {
	forms, err := services.GetForms(db.DB)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch forms")
	}
	return c.JSON(http.StatusOK, forms)
}

// GetFormHandler returns a single form by id
func GetFormHandler(c echo.Context) error {
	form, err := services.GetFormByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch form")
	}
	return c.JSON(http.StatusOK, form)
}

// CreateFormHandler creates an intake form. When password protection is
// enabled the password is hashed, never stored in plaintext.
func CreateFormHandler(c echo.Context) error {
	var req struct {
		Name                string               `json:"name" form:"name"`
		Description         string               `json:"description" form:"description"`
		IsPasswordProtected bool                 `json:"is_password_protected" form:"is_password_protected"`
		Password            string               `json:"password" form:"password"`
		Fields              models.FormFieldList `json:"fields"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.IsPasswordProtected && req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required when password protection is enabled")
	}

	form := &models.Form{
		Name:                req.Name,
		Description:         optional(req.Description),
		IsPasswordProtected: req.IsPasswordProtected,
		Fields:              req.Fields,
	}
	if err := services.CreateForm(db.DB, form, req.Password); err != nil {
		return storeHTTPError(err, "Failed to create form")
	}
	return c.JSON(http.StatusCreated, form)
}

// UpdateFormHandler applies a partial update to a form
func UpdateFormHandler(c echo.Context) error {
	var req struct {
		Name                *string               `json:"name" form:"name"`
		Description         *string               `json:"description" form:"description"`
		IsPasswordProtected *bool                 `json:"is_password_protected" form:"is_password_protected"`
		Password            string                `json:"password" form:"password"`
		Fields              *models.FormFieldList `json:"fields"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name != nil && *req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name cannot be empty")
	}
	if req.IsPasswordProtected != nil && *req.IsPasswordProtected && req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required when password protection is enabled")
	}

	updates := map[string]interface{}{}
	applyString(updates, "name", req.Name, false)
	applyString(updates, "description", req.Description, true)
	if req.IsPasswordProtected != nil {
		updates["is_password_protected"] = *req.IsPasswordProtected
	}
	if req.Fields != nil {
		updates["fields"] = *req.Fields
	}

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateForm(db.DB, id, updates, req.Password); err != nil {
		return storeHTTPError(err, "Failed to update form")
	}

	form, err := services.GetFormByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch form")
	}
	return c.JSON(http.StatusOK, form)
}

// DeleteFormHandler deletes a form
func DeleteFormHandler(c echo.Context) error {
	if err := services.DeleteForm(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete form")
	}
	return c.NoContent(http.StatusNoContent)
}

// VerifyFormPasswordHandler checks a visitor-supplied password against a
// protected form before the form contents are shown
func VerifyFormPasswordHandler(c echo.Context) error {
	var req struct {
		Password string `json:"password" form:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	form, err := services.GetFormByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch form")
	}

	if !services.VerifyFormPassword(form, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect password")
	}
	return c.JSON(http.StatusOK, map[string]bool{"verified": true})
}

// GetAudiencesHandler returns campaign audiences
func GetAudiencesHandler(c echo.Context) error {
	audiences, err := services.GetAudiences(db.DB)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch audiences")
	}
	return c.JSON(http.StatusOK, audiences)
}

// CreateAudienceHandler creates a campaign audience
func CreateAudienceHandler(c echo.Context) error {
	var req struct {
		Name        string `json:"name" form:"name"`
		Description string `json:"description" form:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	audience := &models.Audience{
		Name:        req.Name,
		Description: optional(req.Description),
	}
	if err := services.CreateAudience(db.DB, audience); err != nil {
		return storeHTTPError(err, "Failed to create audience")
	}
	return c.JSON(http.StatusCreated, audience)
}
