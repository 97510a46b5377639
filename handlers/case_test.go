package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"legal_crm_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCreateCaseHandler(t *testing.T) {
	database := setupTestDB(t)

	t.Run("With nested parties", func(t *testing.T) {
		body := `{
			"title": "Estate of Byron",
			"case_number": "CASE-001",
			"opposing_clients": [
				{"first_name": "Opposing", "last_name": "Party"},
				{"first_name": "", "last_name": ""}
			],
			"witnesses": [
				{"first_name": "Key", "last_name": "Witness"}
			]
		}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var kase models.Case
		json.Unmarshal(rec.Body.Bytes(), &kase)
		assert.Equal(t, models.CaseStatusOpen, kase.Status)

		// Blank party sub-form is skipped, not rejected
		var opposing []models.OpposingClient
		database.Where("case_id = ?", kase.ID).Find(&opposing)
		assert.Len(t, opposing, 1)

		var witnesses []models.CaseWitness
		database.Where("case_id = ?", kase.ID).Find(&witnesses)
		assert.Len(t, witnesses, 1)
	})

	t.Run("Duplicate case number", func(t *testing.T) {
		body := `{"title": "Duplicate", "case_number": "CASE-001"}`
		_, c, _ := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		err := CreateCaseHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		body := `{"title": "No number"}`
		_, c, _ := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		err := CreateCaseHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestGetCaseHandler(t *testing.T) {
	database := setupTestDB(t)
	client := &models.Client{Name: "Byron Estate"}
	database.Create(client)
	kase := &models.Case{Title: "Estate of Byron", CaseNumber: "CASE-G1", ClientID: stringToPtr(client.ID)}
	database.Create(kase)

	t.Run("Success with client joined", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases/"+kase.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(kase.ID)

		err := GetCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var fetched models.Case
		json.Unmarshal(rec.Body.Bytes(), &fetched)
		assert.NotNil(t, fetched.Client)
		assert.Equal(t, "Byron Estate", fetched.Client.Name)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/cases/missing", nil)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := GetCaseHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestUpdateCaseHandler(t *testing.T) {
	database := setupTestDB(t)
	kase := &models.Case{Title: "Estate of Byron", CaseNumber: "CASE-U1"}
	database.Create(kase)

	t.Run("Close the case", func(t *testing.T) {
		body := `{"status":"Closed"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/cases/"+kase.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(kase.ID)

		err := UpdateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated models.Case
		json.Unmarshal(rec.Body.Bytes(), &updated)
		assert.Equal(t, models.CaseStatusClosed, updated.Status)
	})

	t.Run("Invalid status", func(t *testing.T) {
		body := `{"status":"Archived"}`
		_, c, _ := setupEcho(http.MethodPut, "/api/cases/"+kase.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(kase.ID)

		err := UpdateCaseHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestDeleteCaseHandler(t *testing.T) {
	database := setupTestDB(t)
	kase := &models.Case{Title: "Short-lived", CaseNumber: "CASE-D1"}
	database.Create(kase)

	_, c, rec := setupEcho(http.MethodDelete, "/api/cases/"+kase.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(kase.ID)

	err := DeleteCaseHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	database.Model(&models.Case{}).Where("id = ?", kase.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateClientHandler(t *testing.T) {
	setupTestDB(t)

	t.Run("Success", func(t *testing.T) {
		body := `{"name":"Inline Client","email":"client@example.com"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/clients", strings.NewReader(body))

		err := CreateClientHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var client models.Client
		json.Unmarshal(rec.Body.Bytes(), &client)
		assert.NotEmpty(t, client.ID)
	})

	t.Run("Missing name", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/api/clients", strings.NewReader(`{}`))

		err := CreateClientHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
