package services

import (
	"errors"

	"legal_crm_go/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetForms fetches intake forms, newest first
func GetForms(dbConn *gorm.DB) ([]models.Form, error) {
	var forms []models.Form
	if err := dbConn.Order("created_at desc").Find(&forms).Error; err != nil {
		return nil, storeError(err)
	}
	return forms, nil
}

// GetFormByID fetches a single form
func GetFormByID(dbConn *gorm.DB, id string) (*models.Form, error) {
	var form models.Form
	if err := dbConn.First(&form, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &form, nil
}

// CreateForm inserts a form, hashing the access password when protection
// is enabled. The plaintext never reaches the store.
func CreateForm(dbConn *gorm.DB, form *models.Form, password string) error {
	if form.IsPasswordProtected {
		hash, err := hashFormPassword(password)
		if err != nil {
			return err
		}
		form.PasswordHash = &hash
	} else {
		form.PasswordHash = nil
	}
	return storeError(dbConn.Create(form).Error)
}

// UpdateForm applies a partial update. A submitted password is hashed;
// disabling protection clears the stored hash.
func UpdateForm(dbConn *gorm.DB, id string, updates map[string]interface{}, password string) error {
	if protected, ok := updates["is_password_protected"].(bool); ok {
		if protected && password != "" {
			hash, err := hashFormPassword(password)
			if err != nil {
				return err
			}
			updates["password_hash"] = hash
		} else if !protected {
			updates["password_hash"] = nil
		}
	}

	result := dbConn.Model(&models.Form{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteForm removes a form
func DeleteForm(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Form{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// VerifyFormPassword checks a password against a protected form
func VerifyFormPassword(form *models.Form, password string) bool {
	if !form.IsPasswordProtected || form.PasswordHash == nil {
		return !form.IsPasswordProtected
	}
	return bcrypt.CompareHashAndPassword([]byte(*form.PasswordHash), []byte(password)) == nil
}

func hashFormPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required when password protection is enabled")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GetAudiences fetches campaign audiences, newest first
func GetAudiences(dbConn *gorm.DB) ([]models.Audience, error) {
	var audiences []models.Audience
	if err := dbConn.Order("created_at desc").Find(&audiences).Error; err != nil {
		return nil, storeError(err)
	}
	return audiences, nil
}

// CreateAudience inserts a new audience
func CreateAudience(dbConn *gorm.DB, audience *models.Audience) error {
	return storeError(dbConn.Create(audience).Error)
}
