package services

import (
	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetHearings fetches hearings ordered by date with an optional status filter
func GetHearings(dbConn *gorm.DB, status string) ([]models.Hearing, error) {
	var hearings []models.Hearing
	query := dbConn.Preload("Case").Order("hearing_date asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&hearings).Error; err != nil {
		return nil, storeError(err)
	}
	return hearings, nil
}

// GetHearingByID fetches a single hearing
func GetHearingByID(dbConn *gorm.DB, id string) (*models.Hearing, error) {
	var hearing models.Hearing
	if err := dbConn.Preload("Case").First(&hearing, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &hearing, nil
}

// CreateHearing inserts a new hearing
func CreateHearing(dbConn *gorm.DB, hearing *models.Hearing) error {
	return storeError(dbConn.Create(hearing).Error)
}

// UpdateHearing applies a partial update to a hearing
func UpdateHearing(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	result := dbConn.Model(&models.Hearing{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHearing removes a hearing
func DeleteHearing(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Hearing{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
