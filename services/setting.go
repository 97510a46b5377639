package services

import (
	"errors"

	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetSettingOptions fetches the directory entries for one settings
// category (judges, courts, case/lawyer types).
func GetSettingOptions(dbConn *gorm.DB, category string) ([]models.SettingOption, error) {
	if !models.IsValidSettingCategory(category) {
		return nil, errors.New("unknown settings category: " + category)
	}
	var options []models.SettingOption
	err := dbConn.Where("category = ?", category).
		Order("position asc, name asc").
		Find(&options).Error
	if err != nil {
		return nil, storeError(err)
	}
	return options, nil
}

// CreateSettingOption inserts a directory entry
func CreateSettingOption(dbConn *gorm.DB, option *models.SettingOption) error {
	if !models.IsValidSettingCategory(option.Category) {
		return errors.New("unknown settings category: " + option.Category)
	}
	return storeError(dbConn.Create(option).Error)
}

// UpdateSettingOption applies a partial update to a directory entry
func UpdateSettingOption(dbConn *gorm.DB, category, id string, updates map[string]interface{}) error {
	result := dbConn.Model(&models.SettingOption{}).
		Where("id = ? AND category = ?", id, category).
		Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSettingOption removes a directory entry
func DeleteSettingOption(dbConn *gorm.DB, category, id string) error {
	result := dbConn.Delete(&models.SettingOption{}, "id = ? AND category = ?", id, category)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
