package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hearing status constants
const (
	HearingStatusScheduled = "Scheduled"
	HearingStatusCompleted = "Completed"
	HearingStatusCancelled = "Cancelled"
)

// Hearing represents a scheduled court hearing
type Hearing struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID *string `gorm:"type:uuid;index" json:"case_id,omitempty"`
	Case   *Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	// CaseTitle is kept as entered so the row stays readable if the case
	// reference dangles.
	CaseTitle string `gorm:"size:255;not null" json:"case_title"`

	HearingDate   string  `gorm:"size:20;not null;index" json:"hearing_date"`
	HearingTime   *string `gorm:"size:10" json:"hearing_time,omitempty"`
	CourtLocation *string `gorm:"size:255" json:"court_location,omitempty"`
	Judge         *string `gorm:"size:200" json:"judge,omitempty"`

	Status string  `gorm:"size:20;default:'Scheduled';index" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes,omitempty"`
}

// BeforeCreate hook to generate UUID
func (h *Hearing) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.Status == "" {
		h.Status = HearingStatusScheduled
	}
	return nil
}

// TableName specifies the table name for Hearing model
func (Hearing) TableName() string {
	return "hearings"
}

// IsValidHearingStatus checks if the status is valid
func IsValidHearingStatus(status string) bool {
	switch status {
	case HearingStatusScheduled, HearingStatusCompleted, HearingStatusCancelled:
		return true
	}
	return false
}
