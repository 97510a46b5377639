package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetEmailTemplatesHandler returns templates with their delivery counters
func GetEmailTemplatesHandler(c echo.Context) error {
	templates, err := services.GetEmailTemplatesWithStats(db.DB, c.QueryParam("type"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch email templates")
	}
	return c.JSON(http.StatusOK, templates)
}

// GetEmailTemplateHandler returns a single template by id
func GetEmailTemplateHandler(c echo.Context) error {
	tmpl, err := services.GetEmailTemplateByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch email template")
	}
	return c.JSON(http.StatusOK, tmpl)
}

// CreateEmailTemplateHandler creates a new template. HTML is sanitized
// before it reaches the store.
func CreateEmailTemplateHandler(c echo.Context) error {
	var req struct {
		Name        string   `json:"name" form:"name"`
		Subject     string   `json:"subject" form:"subject"`
		HTMLContent string   `json:"html_content" form:"html_content"`
		TextContent string   `json:"text_content" form:"text_content"`
		EmailType   string   `json:"email_type" form:"email_type"`
		Tags        []string `json:"tags" form:"tags"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" || req.Subject == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and subject are required")
	}

	tmpl := &models.EmailTemplate{
		Name:        req.Name,
		Subject:     req.Subject,
		HTMLContent: optional(req.HTMLContent),
		TextContent: optional(req.TextContent),
		EmailType:   req.EmailType,
		Tags:        req.Tags,
	}
	if err := services.CreateEmailTemplate(db.DB, tmpl); err != nil {
		return storeHTTPError(err, "Failed to create email template")
	}
	return c.JSON(http.StatusCreated, tmpl)
}

// UpdateEmailTemplateHandler applies a partial update to a template
func UpdateEmailTemplateHandler(c echo.Context) error {
	var req struct {
		Name        *string `json:"name" form:"name"`
		Subject     *string `json:"subject" form:"subject"`
		HTMLContent *string `json:"html_content" form:"html_content"`
		TextContent *string `json:"text_content" form:"text_content"`
		EmailType   *string `json:"email_type" form:"email_type"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name != nil && *req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name cannot be empty")
	}
	if req.Subject != nil && *req.Subject == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "subject cannot be empty")
	}

	updates := map[string]interface{}{}
	applyString(updates, "name", req.Name, false)
	applyString(updates, "subject", req.Subject, false)
	applyString(updates, "html_content", req.HTMLContent, true)
	applyString(updates, "text_content", req.TextContent, true)
	applyString(updates, "email_type", req.EmailType, false)

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateEmailTemplate(db.DB, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update email template")
	}

	tmpl, err := services.GetEmailTemplateByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch email template")
	}
	return c.JSON(http.StatusOK, tmpl)
}

// DeleteEmailTemplateHandler deletes a template
func DeleteEmailTemplateHandler(c echo.Context) error {
	if err := services.DeleteEmailTemplate(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete email template")
	}
	return c.NoContent(http.StatusNoContent)
}

// SendCampaignHandler sends a template to every contact with an email address
func SendCampaignHandler(c echo.Context) error {
	result, err := services.SendCampaign(db.DB, AppConfig, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to send campaign")
	}
	return c.JSON(http.StatusOK, result)
}
