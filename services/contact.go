package services

import (
	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetContacts fetches all contacts, newest first. An optional status
// filters server-side; text search stays client-side in the dashboard.
func GetContacts(dbConn *gorm.DB, status string) ([]models.Contact, error) {
	var contacts []models.Contact
	query := dbConn.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&contacts).Error; err != nil {
		return nil, storeError(err)
	}
	return contacts, nil
}

// GetContactByID fetches a single contact
func GetContactByID(dbConn *gorm.DB, id string) (*models.Contact, error) {
	var contact models.Contact
	if err := dbConn.First(&contact, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &contact, nil
}

// CreateContact inserts a new contact
func CreateContact(dbConn *gorm.DB, contact *models.Contact) error {
	return storeError(dbConn.Create(contact).Error)
}

// UpdateContact applies a partial update. Only the submitted fields
// change; the identifier and unrelated fields are untouched.
func UpdateContact(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	result := dbConn.Model(&models.Contact{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteContact removes a contact. References from tasks or appointments
// stay dangling; nothing cascades.
func DeleteContact(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MoveContactToStage places a contact on a pipeline board column
func MoveContactToStage(dbConn *gorm.DB, contactID, stageID string) error {
	var stage models.PipelineStage
	if err := dbConn.First(&stage, "id = ?", stageID).Error; err != nil {
		return storeError(err)
	}
	return UpdateContact(dbConn, contactID, map[string]interface{}{"pipeline_stage_id": stage.ID})
}
