package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case point status constants
const (
	CasePointStatusDraft     = "Draft"
	CasePointStatusFinalized = "Finalized"
)

// CasePoint represents an argument or note prepared for a case
type CasePoint struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title string `gorm:"size:255;not null" json:"title"`

	CaseID *string `gorm:"type:uuid;index" json:"case_id,omitempty"`
	Case   *Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	CaseTitle *string `gorm:"size:255" json:"case_title,omitempty"`

	Status      string  `gorm:"size:20;default:'Draft';index" json:"status"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
}

// BeforeCreate hook to generate UUID
func (p *CasePoint) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = CasePointStatusDraft
	}
	return nil
}

// TableName specifies the table name for CasePoint model
func (CasePoint) TableName() string {
	return "case_points"
}

// IsValidCasePointStatus checks if the status is valid
func IsValidCasePointStatus(status string) bool {
	return status == CasePointStatusDraft || status == CasePointStatusFinalized
}
