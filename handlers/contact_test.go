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

func TestGetContactsHandler(t *testing.T) {
	database := setupTestDB(t)
	database.Create(&models.Contact{FirstName: "Ada", LastName: "Lovelace", Status: models.ContactStatusLead})
	database.Create(&models.Contact{FirstName: "Grace", LastName: "Hopper", Status: models.ContactStatusClient})

	t.Run("All contacts", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/contacts", nil)

		err := GetContactsHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var contacts []models.Contact
		json.Unmarshal(rec.Body.Bytes(), &contacts)
		assert.Len(t, contacts, 2)
	})

	t.Run("Status filter", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/contacts?status=Client", nil)

		err := GetContactsHandler(c)
		assert.NoError(t, err)

		var contacts []models.Contact
		json.Unmarshal(rec.Body.Bytes(), &contacts)
		assert.Len(t, contacts, 1)
		assert.Equal(t, "Grace", contacts[0].FirstName)
	})

	t.Run("Invalid status filter", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/contacts?status=Bogus", nil)

		err := GetContactsHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestCreateContactHandler(t *testing.T) {
	database := setupTestDB(t)

	t.Run("Success with defaults", func(t *testing.T) {
		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/contacts", strings.NewReader(body))

		err := CreateContactHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var contact models.Contact
		json.Unmarshal(rec.Body.Bytes(), &contact)
		assert.NotEmpty(t, contact.ID)
		assert.Equal(t, models.ContactStatusLead, contact.Status)
		assert.Equal(t, "ada@example.com", *contact.Email)
	})

	t.Run("Blank optional fields stored as null", func(t *testing.T) {
		body := `{"first_name":"No","last_name":"Extras","phone":""}`
		_, c, rec := setupEcho(http.MethodPost, "/api/contacts", strings.NewReader(body))

		err := CreateContactHandler(c)
		assert.NoError(t, err)

		var contact models.Contact
		json.Unmarshal(rec.Body.Bytes(), &contact)

		var stored models.Contact
		database.First(&stored, "id = ?", contact.ID)
		assert.Nil(t, stored.Phone)
		assert.Nil(t, stored.Email)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		var before int64
		database.Model(&models.Contact{}).Count(&before)

		body := `{"first_name":"OnlyFirst"}`
		_, c, _ := setupEcho(http.MethodPost, "/api/contacts", strings.NewReader(body))

		err := CreateContactHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)

		// No record is written when validation fails
		var after int64
		database.Model(&models.Contact{}).Count(&after)
		assert.Equal(t, before, after)
	})
}

func TestUpdateContactHandler(t *testing.T) {
	database := setupTestDB(t)
	contact := &models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: stringToPtr("ada@example.com")}
	database.Create(contact)

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		body := `{"company":"Analytical Engines"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/contacts/"+contact.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(contact.ID)

		err := UpdateContactHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated models.Contact
		json.Unmarshal(rec.Body.Bytes(), &updated)
		assert.Equal(t, "Analytical Engines", *updated.Company)
		assert.Equal(t, "ada@example.com", *updated.Email)
	})

	t.Run("Submitted blank clears nullable column", func(t *testing.T) {
		body := `{"email":""}`
		_, c, _ := setupEcho(http.MethodPut, "/api/contacts/"+contact.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(contact.ID)

		err := UpdateContactHandler(c)
		assert.NoError(t, err)

		var stored models.Contact
		database.First(&stored, "id = ?", contact.ID)
		assert.Nil(t, stored.Email)
	})

	t.Run("Empty body rejected", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPut, "/api/contacts/"+contact.ID, strings.NewReader(`{}`))
		c.SetParamNames("id")
		c.SetParamValues(contact.ID)

		err := UpdateContactHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Unknown id", func(t *testing.T) {
		body := `{"company":"Nowhere"}`
		_, c, _ := setupEcho(http.MethodPut, "/api/contacts/missing", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := UpdateContactHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestDeleteContactHandler(t *testing.T) {
	database := setupTestDB(t)
	contact := &models.Contact{FirstName: "Ada", LastName: "Lovelace"}
	database.Create(contact)

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodDelete, "/api/contacts/"+contact.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(contact.ID)

		err := DeleteContactHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Second delete returns not found", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodDelete, "/api/contacts/"+contact.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(contact.ID)

		err := DeleteContactHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestMoveContactStageHandler(t *testing.T) {
	database := setupTestDB(t)
	stage := &models.PipelineStage{Name: "Qualified", Position: 2}
	database.Create(stage)
	contact := &models.Contact{FirstName: "Ada", LastName: "Lovelace"}
	database.Create(contact)

	t.Run("Success", func(t *testing.T) {
		body := `{"stage_id":"` + stage.ID + `"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/contacts/"+contact.ID+"/stage", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(contact.ID)

		err := MoveContactStageHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		var stored models.Contact
		database.First(&stored, "id = ?", contact.ID)
		assert.Equal(t, stage.ID, *stored.PipelineStageID)
	})

	t.Run("Missing stage id", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPut, "/api/contacts/"+contact.ID+"/stage", strings.NewReader(`{}`))
		c.SetParamNames("id")
		c.SetParamValues(contact.ID)

		err := MoveContactStageHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
