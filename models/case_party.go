package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartyDetails holds the shared contact fields for people attached to a
// case (opposing clients and witnesses).
type PartyDetails struct {
	FirstName    string  `gorm:"size:100" json:"first_name"`
	LastName     string  `gorm:"size:100" json:"last_name"`
	Mobile       *string `gorm:"size:30" json:"mobile,omitempty"`
	Email        *string `gorm:"size:255" json:"email,omitempty"`
	AddressLine1 *string `gorm:"size:255" json:"address_line1,omitempty"`
	AddressLine2 *string `gorm:"size:255" json:"address_line2,omitempty"`
	City         *string `gorm:"size:100" json:"city,omitempty"`
	State        *string `gorm:"size:100" json:"state,omitempty"`
	PostalCode   *string `gorm:"size:20" json:"postal_code,omitempty"`
	Country      *string `gorm:"size:100" json:"country,omitempty"`
}

// IsBlank reports whether no name was entered. Blank party sub-forms are
// skipped at submit time rather than rejected.
func (p PartyDetails) IsBlank() bool {
	return p.FirstName == "" && p.LastName == ""
}

// OpposingClient is a party on the opposing side of a case
type OpposingClient struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID string `gorm:"type:uuid;index;not null" json:"case_id"`

	PartyDetails `gorm:"embedded"`
}

func (o *OpposingClient) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for OpposingClient model
func (OpposingClient) TableName() string {
	return "opposing_clients"
}

// CaseWitness is a witness attached to a case
type CaseWitness struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID string `gorm:"type:uuid;index;not null" json:"case_id"`

	PartyDetails `gorm:"embedded"`
}

func (w *CaseWitness) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseWitness model
func (CaseWitness) TableName() string {
	return "case_witnesses"
}
