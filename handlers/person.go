package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetPeopleHandler returns people, optionally filtered by role
func GetPeopleHandler(c echo.Context) error {
	role := c.QueryParam("role")
	if role != "" && !models.IsValidPersonRole(role) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role filter")
	}

	people, err := services.GetPeople(db.DB, role)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch people")
	}
	return c.JSON(http.StatusOK, people)
}

// GetPersonHandler returns a single person by id
func GetPersonHandler(c echo.Context) error {
	person, err := services.GetPersonByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch person")
	}
	return c.JSON(http.StatusOK, person)
}

// CreatePersonHandler creates a new person
func CreatePersonHandler(c echo.Context) error {
	var req struct {
		CaseID       string `json:"case_id" form:"case_id"`
		FirstName    string `json:"first_name" form:"first_name"`
		LastName     string `json:"last_name" form:"last_name"`
		Role         string `json:"role" form:"role"`
		Mobile       string `json:"mobile" form:"mobile"`
		Email        string `json:"email" form:"email"`
		AddressLine1 string `json:"address_line1" form:"address_line1"`
		AddressLine2 string `json:"address_line2" form:"address_line2"`
		City         string `json:"city" form:"city"`
		State        string `json:"state" form:"state"`
		PostalCode   string `json:"postal_code" form:"postal_code"`
		Country      string `json:"country" form:"country"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.FirstName == "" || req.LastName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "first_name and last_name are required")
	}
	if req.Role != "" && !models.IsValidPersonRole(req.Role) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role")
	}

	person := &models.Person{
		CaseID:       optional(req.CaseID),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Mobile:       optional(req.Mobile),
		Email:        optional(req.Email),
		AddressLine1: optional(req.AddressLine1),
		AddressLine2: optional(req.AddressLine2),
		City:         optional(req.City),
		State:        optional(req.State),
		PostalCode:   optional(req.PostalCode),
		Country:      optional(req.Country),
	}
	if err := services.CreatePerson(db.DB, person); err != nil {
		return storeHTTPError(err, "Failed to create person")
	}
	return c.JSON(http.StatusCreated, person)
}

// UpdatePersonHandler applies a partial update to a person
func UpdatePersonHandler(c echo.Context) error {
	var req struct {
		CaseID       *string `json:"case_id" form:"case_id"`
		FirstName    *string `json:"first_name" form:"first_name"`
		LastName     *string `json:"last_name" form:"last_name"`
		Role         *string `json:"role" form:"role"`
		Mobile       *string `json:"mobile" form:"mobile"`
		Email        *string `json:"email" form:"email"`
		AddressLine1 *string `json:"address_line1" form:"address_line1"`
		AddressLine2 *string `json:"address_line2" form:"address_line2"`
		City         *string `json:"city" form:"city"`
		State        *string `json:"state" form:"state"`
		PostalCode   *string `json:"postal_code" form:"postal_code"`
		Country      *string `json:"country" form:"country"`
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
	if req.Role != nil && !models.IsValidPersonRole(*req.Role) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role")
	}

	updates := map[string]interface{}{}
	applyString(updates, "case_id", req.CaseID, true)
	applyString(updates, "first_name", req.FirstName, false)
	applyString(updates, "last_name", req.LastName, false)
	applyString(updates, "role", req.Role, false)
	applyString(updates, "mobile", req.Mobile, true)
	applyString(updates, "email", req.Email, true)
	applyString(updates, "address_line1", req.AddressLine1, true)
	applyString(updates, "address_line2", req.AddressLine2, true)
	applyString(updates, "city", req.City, true)
	applyString(updates, "state", req.State, true)
	applyString(updates, "postal_code", req.PostalCode, true)
	applyString(updates, "country", req.Country, true)

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdatePerson(db.DB, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update person")
	}

	person, err := services.GetPersonByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch person")
	}
	return c.JSON(http.StatusOK, person)
}

// DeletePersonHandler deletes a person
func DeletePersonHandler(c echo.Context) error {
	if err := services.DeletePerson(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete person")
	}
	return c.NoContent(http.StatusNoContent)
}
