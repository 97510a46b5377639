package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment status constants
const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)

// Appointment represents a scheduled meeting, optionally linked to a contact
type Appointment struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	ContactID *string  `gorm:"type:uuid;index" json:"contact_id,omitempty"`
	Contact   *Contact `gorm:"foreignKey:ContactID" json:"contact,omitempty"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Location   *string `gorm:"size:255" json:"location,omitempty"`
	MeetingURL *string `gorm:"size:500" json:"meeting_url,omitempty"`

	Status string `gorm:"size:20;default:'Scheduled';index" json:"status"`
}

// BeforeCreate hook to generate UUID
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = AppointmentStatusScheduled
	}
	return nil
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// IsValidAppointmentStatus checks if the status is valid
func IsValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}
