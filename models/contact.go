package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact status constants
const (
	ContactStatusLead     = "Lead"
	ContactStatusActive   = "Active"
	ContactStatusClient   = "Client"
	ContactStatusInactive = "Inactive"
)

// Contact represents a CRM contact (lead, prospect or client)
type Contact struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName string  `gorm:"size:100;not null" json:"first_name"`
	LastName  string  `gorm:"size:100;not null" json:"last_name"`
	Email     *string `gorm:"size:255;index" json:"email,omitempty"`
	Phone     *string `gorm:"size:30" json:"phone,omitempty"`
	Company   *string `gorm:"size:200" json:"company,omitempty"`

	Status string  `gorm:"size:20;default:'Lead';index" json:"status"`
	Source *string `gorm:"size:100" json:"source,omitempty"`

	Address *string `gorm:"size:255" json:"address,omitempty"`
	City    *string `gorm:"size:100" json:"city,omitempty"`
	State   *string `gorm:"size:100" json:"state,omitempty"`
	Zip     *string `gorm:"size:20" json:"zip,omitempty"`
	Country *string `gorm:"size:100" json:"country,omitempty"`
	Notes   *string `gorm:"type:text" json:"notes,omitempty"`

	Tags StringList `gorm:"type:text" json:"tags,omitempty"`

	// Pipeline board placement
	PipelineStageID *string        `gorm:"type:uuid;index" json:"pipeline_stage_id,omitempty"`
	PipelineStage   *PipelineStage `gorm:"foreignKey:PipelineStageID" json:"pipeline_stage,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = ContactStatusLead
	}
	return nil
}

// TableName specifies the table name for Contact model
func (Contact) TableName() string {
	return "contacts"
}

// FullName returns the contact's display name
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// IsValidContactStatus checks if the status is valid
func IsValidContactStatus(status string) bool {
	switch status {
	case ContactStatusLead, ContactStatusActive, ContactStatusClient, ContactStatusInactive:
		return true
	}
	return false
}
