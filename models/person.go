package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person role constants
const (
	PersonRoleClient         = "Client"
	PersonRoleOpposingClient = "Opposing Client"
	PersonRoleWitness        = "Witness"
)

// Person represents a person tracked under People, optionally linked to a case
type Person struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID *string `gorm:"type:uuid;index" json:"case_id,omitempty"`
	Case   *Case   `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Role      string `gorm:"size:30;default:'Client';index" json:"role"`

	Mobile       *string `gorm:"size:30" json:"mobile,omitempty"`
	Email        *string `gorm:"size:255" json:"email,omitempty"`
	AddressLine1 *string `gorm:"size:255" json:"address_line1,omitempty"`
	AddressLine2 *string `gorm:"size:255" json:"address_line2,omitempty"`
	City         *string `gorm:"size:100" json:"city,omitempty"`
	State        *string `gorm:"size:100" json:"state,omitempty"`
	PostalCode   *string `gorm:"size:20" json:"postal_code,omitempty"`
	Country      *string `gorm:"size:100" json:"country,omitempty"`
}

// BeforeCreate hook to generate UUID
func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Role == "" {
		p.Role = PersonRoleClient
	}
	return nil
}

// TableName specifies the table name for Person model
func (Person) TableName() string {
	return "people"
}

// IsValidPersonRole checks if the role is valid
func IsValidPersonRole(role string) bool {
	switch role {
	case PersonRoleClient, PersonRoleOpposingClient, PersonRoleWitness:
		return true
	}
	return false
}
