package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting option categories, one per settings directory page
const (
	SettingCategoryJudges          = "judges"
	SettingCategoryCourts          = "courts"
	SettingCategoryCaseLawyerTypes = "case_lawyer_types"
)

// SettingOption is a directory entry managed under Settings
// (judges, courts, case/lawyer types).
type SettingOption struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category    string  `gorm:"size:50;not null;index" json:"category"`
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description *string `gorm:"size:500" json:"description,omitempty"`
	Position    int     `gorm:"default:0" json:"position"`
}

// BeforeCreate hook to generate UUID
func (s *SettingOption) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for SettingOption model
func (SettingOption) TableName() string {
	return "setting_options"
}

// IsValidSettingCategory checks if the category is one of the managed directories
func IsValidSettingCategory(category string) bool {
	switch category {
	case SettingCategoryJudges, SettingCategoryCourts, SettingCategoryCaseLawyerTypes:
		return true
	}
	return false
}
