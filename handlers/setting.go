package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetSettingOptionsHandler returns the directory entries of one settings
// category (judges, courts, case_lawyer_types)
func GetSettingOptionsHandler(c echo.Context) error {
	category := c.Param("category")
	if !models.IsValidSettingCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid settings category")
	}

	options, err := services.GetSettingOptions(db.DB, category)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch settings")
	}
	return c.JSON(http.StatusOK, options)
}

// CreateSettingOptionHandler adds an entry to a settings category
func CreateSettingOptionHandler(c echo.Context) error {
	category := c.Param("category")
	if !models.IsValidSettingCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid settings category")
	}

	var req struct {
		Name        string `json:"name" form:"name"`
		Description string `json:"description" form:"description"`
		Position    int    `json:"position" form:"position"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	option := &models.SettingOption{
		Category:    category,
		Name:        req.Name,
		Description: optional(req.Description),
		Position:    req.Position,
	}
	if err := services.CreateSettingOption(db.DB, option); err != nil {
		return storeHTTPError(err, "Failed to create setting")
	}
	return c.JSON(http.StatusCreated, option)
}

// UpdateSettingOptionHandler applies a partial update to a directory entry
func UpdateSettingOptionHandler(c echo.Context) error {
	category := c.Param("category")
	if !models.IsValidSettingCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid settings category")
	}

	var req struct {
		Name        *string `json:"name" form:"name"`
		Description *string `json:"description" form:"description"`
		Position    *int    `json:"position" form:"position"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name != nil && *req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name cannot be empty")
	}

	updates := map[string]interface{}{}
	applyString(updates, "name", req.Name, false)
	applyString(updates, "description", req.Description, true)
	if req.Position != nil {
		updates["position"] = *req.Position
	}

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateSettingOption(db.DB, category, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update setting")
	}

	options, err := services.GetSettingOptions(db.DB, category)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch settings")
	}
	for i := range options {
		if options[i].ID == id {
			return c.JSON(http.StatusOK, options[i])
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "Record not found")
}

// DeleteSettingOptionHandler removes a directory entry
func DeleteSettingOptionHandler(c echo.Context) error {
	category := c.Param("category")
	if !models.IsValidSettingCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid settings category")
	}

	if err := services.DeleteSettingOption(db.DB, category, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete setting")
	}
	return c.NoContent(http.StatusNoContent)
}
