package services

import (
	"testing"

	"legal_crm_go/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateFormHashesPassword(t *testing.T) {
	db := setupTestDB(t)

	form := &models.Form{Name: "Intake", IsPasswordProtected: true}
	assert.NoError(t, CreateForm(db, form, "s3cret"))

	var stored models.Form
	db.First(&stored, "id = ?", form.ID)
	assert.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret", *stored.PasswordHash)

	assert.True(t, VerifyFormPassword(&stored, "s3cret"))
	assert.False(t, VerifyFormPassword(&stored, "wrong"))
}

func TestCreateFormProtectionRequiresPassword(t *testing.T) {
	db := setupTestDB(t)

	form := &models.Form{Name: "Broken", IsPasswordProtected: true}
	err := CreateForm(db, form, "")
	assert.Error(t, err)
}

func TestUnprotectedFormVerifies(t *testing.T) {
	db := setupTestDB(t)

	form := &models.Form{Name: "Open"}
	assert.NoError(t, CreateForm(db, form, ""))
	assert.Nil(t, form.PasswordHash)

	// An unprotected form verifies with any password input
	assert.True(t, VerifyFormPassword(form, ""))
	assert.True(t, VerifyFormPassword(form, "anything"))
}

func TestUpdateFormDisablingProtectionClearsHash(t *testing.T) {
	db := setupTestDB(t)

	form := &models.Form{Name: "Protected", IsPasswordProtected: true}
	assert.NoError(t, CreateForm(db, form, "s3cret"))

	updates := map[string]interface{}{"is_password_protected": false}
	assert.NoError(t, UpdateForm(db, form.ID, updates, ""))

	var stored models.Form
	db.First(&stored, "id = ?", form.ID)
	assert.False(t, stored.IsPasswordProtected)
	assert.Nil(t, stored.PasswordHash)
}

func TestFormFieldsRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	form := &models.Form{
		Name: "Detailed",
		Fields: models.FormFieldList{
			{ID: "name", Label: "Full name", Type: "text", Required: true},
			{ID: "matter", Label: "Matter type", Type: "select", Options: []string{"Family", "Criminal"}},
		},
	}
	assert.NoError(t, CreateForm(db, form, ""))

	stored, err := GetFormByID(db, form.ID)
	assert.NoError(t, err)
	assert.Len(t, stored.Fields, 2)
	assert.Equal(t, "select", stored.Fields[1].Type)
	assert.Equal(t, []string{"Family", "Criminal"}, stored.Fields[1].Options)
}
