package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a firm client selectable on a case
type Client struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string  `gorm:"size:200;not null" json:"name"`
	Email   *string `gorm:"size:255" json:"email,omitempty"`
	Phone   *string `gorm:"size:30" json:"phone,omitempty"`
	Address *string `gorm:"size:500" json:"address,omitempty"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}
