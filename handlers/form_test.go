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

func TestCreateFormHandler(t *testing.T) {
	database := setupTestDB(t)

	t.Run("Password protected", func(t *testing.T) {
		body := `{"name":"Intake","is_password_protected":true,"password":"s3cret","fields":[{"id":"full_name","label":"Full name","type":"text","required":true}]}`
		_, c, rec := setupEcho(http.MethodPost, "/api/forms", strings.NewReader(body))

		err := CreateFormHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		// The hash never leaves the server
		assert.NotContains(t, rec.Body.String(), "s3cret")
		assert.NotContains(t, rec.Body.String(), "password_hash")

		var form models.Form
		json.Unmarshal(rec.Body.Bytes(), &form)

		var stored models.Form
		database.First(&stored, "id = ?", form.ID)
		assert.NotNil(t, stored.PasswordHash)
		assert.NotEqual(t, "s3cret", *stored.PasswordHash)
	})

	t.Run("Protection without password rejected", func(t *testing.T) {
		body := `{"name":"Broken","is_password_protected":true}`
		_, c, _ := setupEcho(http.MethodPost, "/api/forms", strings.NewReader(body))

		err := CreateFormHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestVerifyFormPasswordHandler(t *testing.T) {
	database := setupTestDB(t)

	body := `{"name":"Protected","is_password_protected":true,"password":"open-sesame"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/forms", strings.NewReader(body))
	assert.NoError(t, CreateFormHandler(c))

	var form models.Form
	json.Unmarshal(rec.Body.Bytes(), &form)

	t.Run("Correct password", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/forms/"+form.ID+"/verify", strings.NewReader(`{"password":"open-sesame"}`))
		c.SetParamNames("id")
		c.SetParamValues(form.ID)

		err := VerifyFormPasswordHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/api/forms/"+form.ID+"/verify", strings.NewReader(`{"password":"guess"}`))
		c.SetParamNames("id")
		c.SetParamValues(form.ID)

		err := VerifyFormPasswordHandler(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("Disabling protection clears the hash", func(t *testing.T) {
		body := `{"is_password_protected":false}`
		_, c, _ := setupEcho(http.MethodPut, "/api/forms/"+form.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(form.ID)

		err := UpdateFormHandler(c)
		assert.NoError(t, err)

		var stored models.Form
		database.First(&stored, "id = ?", form.ID)
		assert.False(t, stored.IsPasswordProtected)
		assert.Nil(t, stored.PasswordHash)
	})
}

func TestCreateAudienceHandler(t *testing.T) {
	setupTestDB(t)

	body := `{"name":"Newsletter readers"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/audiences", strings.NewReader(body))

	err := CreateAudienceHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var audience models.Audience
	json.Unmarshal(rec.Body.Bytes(), &audience)
	assert.NotEmpty(t, audience.ID)
	assert.Equal(t, int64(0), audience.ContactCount)
}
