package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusOpen    = "Open"
	CaseStatusPending = "Pending"
	CaseStatusClosed  = "Closed"
)

// Case represents a legal case handled by the firm
type Case struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title      string `gorm:"size:255;not null" json:"title"`
	CaseNumber string `gorm:"size:100;not null;uniqueIndex" json:"case_number"`

	// References stay dangling if the parent row is deleted; no cascades.
	LawyerID *string `gorm:"type:uuid;index" json:"lawyer_id,omitempty"`
	Lawyer   *Lawyer `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
	ClientID *string `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	CaseType    *string `gorm:"size:100" json:"case_type,omitempty"`
	StartDate   *string `gorm:"size:20" json:"start_date,omitempty"`
	CourtName   *string `gorm:"size:200" json:"court_name,omitempty"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	Status string `gorm:"size:20;default:'Open';index" json:"status"`

	OpposingClients []OpposingClient `gorm:"foreignKey:CaseID" json:"opposing_clients,omitempty"`
	Witnesses       []CaseWitness    `gorm:"foreignKey:CaseID" json:"witnesses,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = CaseStatusOpen
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	switch status {
	case CaseStatusOpen, CaseStatusPending, CaseStatusClosed:
		return true
	}
	return false
}
