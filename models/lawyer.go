package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lawyer represents a lawyer working with the firm
type Lawyer struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name   string  `gorm:"size:200;not null" json:"name"`
	Gender *string `gorm:"size:20" json:"gender,omitempty"`
	Dob    *string `gorm:"size:20" json:"dob,omitempty"`
	Age    *int    `json:"age,omitempty"`
	Email  *string `gorm:"size:255;index" json:"email,omitempty"`
	Mobile *string `gorm:"size:30" json:"mobile,omitempty"`

	Address    *string `gorm:"size:500" json:"address,omitempty"`
	City       *string `gorm:"size:100" json:"city,omitempty"`
	State      *string `gorm:"size:100" json:"state,omitempty"`
	PostalCode *string `gorm:"size:20" json:"postal_code,omitempty"`
	Country    *string `gorm:"size:100" json:"country,omitempty"`

	LawyerType *string `gorm:"size:100" json:"lawyer_type,omitempty"`

	CaseBasedBillRate *float64 `json:"case_based_bill_rate,omitempty"`
	TimeBasedBillRate *float64 `json:"time_based_bill_rate,omitempty"`
	MonthlyBillRate   *float64 `json:"monthly_bill_rate,omitempty"`

	PaymentDetails PaymentDetailList `gorm:"type:text" json:"payment_details,omitempty"`
}

// BeforeCreate hook to generate UUID
func (l *Lawyer) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Lawyer model
func (Lawyer) TableName() string {
	return "lawyers"
}
