package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Form represents a client intake form
type Form struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string  `gorm:"size:200;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	IsPasswordProtected bool `gorm:"default:false" json:"is_password_protected"`
	// PasswordHash holds a bcrypt hash; the plaintext is never stored and
	// the hash is never serialized.
	PasswordHash *string `gorm:"size:100" json:"-"`

	Fields FormFieldList `gorm:"type:text" json:"fields,omitempty"`
}

// BeforeCreate hook to generate UUID
func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Form model
func (Form) TableName() string {
	return "forms"
}

// Audience represents a named group of contacts for email campaigns
type Audience struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string  `gorm:"size:200;not null" json:"name"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	ContactCount int64   `gorm:"default:0" json:"contact_count"`
}

// BeforeCreate hook to generate UUID
func (a *Audience) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Audience model
func (Audience) TableName() string {
	return "audiences"
}
