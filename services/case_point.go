package services

import (
	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetCasePoints fetches case points, newest first, with an optional status filter
func GetCasePoints(dbConn *gorm.DB, status string) ([]models.CasePoint, error) {
	var points []models.CasePoint
	query := dbConn.Preload("Case").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&points).Error; err != nil {
		return nil, storeError(err)
	}
	return points, nil
}

// GetCasePointByID fetches a single case point
func GetCasePointByID(dbConn *gorm.DB, id string) (*models.CasePoint, error) {
	var point models.CasePoint
	if err := dbConn.Preload("Case").First(&point, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &point, nil
}

// CreateCasePoint inserts a new case point
func CreateCasePoint(dbConn *gorm.DB, point *models.CasePoint) error {
	return storeError(dbConn.Create(point).Error)
}

// UpdateCasePoint applies a partial update to a case point
func UpdateCasePoint(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	result := dbConn.Model(&models.CasePoint{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCasePoint removes a case point
func DeleteCasePoint(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.CasePoint{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
