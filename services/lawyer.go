package services

import (
	"time"

	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetLawyers fetches all lawyers, newest first
func GetLawyers(dbConn *gorm.DB) ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	if err := dbConn.Order("created_at desc").Find(&lawyers).Error; err != nil {
		return nil, storeError(err)
	}
	return lawyers, nil
}

// GetLawyerByID fetches a single lawyer
func GetLawyerByID(dbConn *gorm.DB, id string) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	if err := dbConn.First(&lawyer, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &lawyer, nil
}

// CreateLawyer inserts a new lawyer
func CreateLawyer(dbConn *gorm.DB, lawyer *models.Lawyer) error {
	return storeError(dbConn.Create(lawyer).Error)
}

// UpdateLawyer applies a partial update to a lawyer
func UpdateLawyer(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	result := dbConn.Model(&models.Lawyer{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLawyer removes a lawyer. Cases referencing it keep a dangling
// lawyer_id.
func DeleteLawyer(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Lawyer{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DuplicateLawyer inserts a copy of an existing lawyer with a fresh id,
// mirroring the list view's duplicate action.
func DuplicateLawyer(dbConn *gorm.DB, id string) (*models.Lawyer, error) {
	original, err := GetLawyerByID(dbConn, id)
	if err != nil {
		return nil, err
	}

	duplicate := *original
	duplicate.ID = ""
	duplicate.Name = original.Name + " (Copy)"
	// Zeroed so GORM stamps fresh times and the copy leads the
	// newest-first list
	duplicate.CreatedAt = time.Time{}
	duplicate.UpdatedAt = time.Time{}
	if err := dbConn.Create(&duplicate).Error; err != nil {
		return nil, storeError(err)
	}
	return &duplicate, nil
}
