package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document represents an uploaded file attached to a case
type Document struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID *string `gorm:"type:uuid;index" json:"case_id,omitempty"`
	Case   *Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	FileName         string `gorm:"size:255;not null" json:"file_name"`
	FileOriginalName string `gorm:"size:255;not null" json:"file_original_name"`
	FileSize         int64  `gorm:"not null" json:"file_size"`
	MimeType         string `gorm:"size:100" json:"mime_type"`

	// StorageKey locates the file in the storage provider (R2 or local).
	StorageKey string `gorm:"size:500;not null" json:"storage_key"`
}

// BeforeCreate hook to generate UUID
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Document model
func (Document) TableName() string {
	return "documents"
}
