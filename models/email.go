package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Email template type constants
const (
	EmailTypeCampaign      = "Workflow/Campaign"
	EmailTypeTransactional = "Transactional"
)

// EmailTemplate represents a reusable email design
type EmailTemplate struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"size:200;not null" json:"name"`
	Subject string `gorm:"size:255;not null" json:"subject"`

	// HTMLContent is sanitized at the store boundary before persisting.
	HTMLContent *string `gorm:"type:text" json:"html_content,omitempty"`
	TextContent *string `gorm:"type:text" json:"text_content,omitempty"`

	EmailType string     `gorm:"size:50;default:'Workflow/Campaign';index" json:"email_type"`
	Tags      StringList `gorm:"type:text" json:"tags,omitempty"`
}

// BeforeCreate hook to generate UUID
func (e *EmailTemplate) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.EmailType == "" {
		e.EmailType = EmailTypeCampaign
	}
	return nil
}

// TableName specifies the table name for EmailTemplate model
func (EmailTemplate) TableName() string {
	return "email_templates"
}

// EmailStats holds the per-template delivery counters shown on the list view.
// Counts are independent of each other; no cross-consistency is guaranteed.
type EmailStats struct {
	Sends  int64 `json:"sends"`
	Opens  int64 `json:"opens"`
	Clicks int64 `json:"clicks"`
}

// EmailSend records a single delivery of a template to a recipient
type EmailSend struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TemplateID string         `gorm:"type:uuid;index;not null" json:"template_id"`
	Template   *EmailTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`

	Recipient string     `gorm:"size:255;not null;index" json:"recipient"`
	SentAt    time.Time  `json:"sent_at"`
	OpenedAt  *time.Time `json:"opened_at,omitempty"`
	ClickedAt *time.Time `json:"clicked_at,omitempty"`
}

// BeforeCreate hook to generate UUID
func (s *EmailSend) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.SentAt.IsZero() {
		s.SentAt = time.Now().UTC()
	}
	return nil
}

// TableName specifies the table name for EmailSend model
func (EmailSend) TableName() string {
	return "email_sends"
}
