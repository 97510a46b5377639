package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task status constants
const (
	TaskStatusOpen       = "Open"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

// Task priority constants
const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
)

// Task represents a to-do item, optionally linked to a contact
type Task struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	ContactID *string  `gorm:"type:uuid;index" json:"contact_id,omitempty"`
	Contact   *Contact `gorm:"foreignKey:ContactID" json:"contact,omitempty"`

	DueDate  *string `gorm:"size:20" json:"due_date,omitempty"`
	Priority string  `gorm:"size:10;default:'Medium';index" json:"priority"`
	Status   string  `gorm:"size:20;default:'Open';index" json:"status"`
}

// BeforeCreate hook to generate UUID
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = TaskPriorityMedium
	}
	if t.Status == "" {
		t.Status = TaskStatusOpen
	}
	return nil
}

// TableName specifies the table name for Task model
func (Task) TableName() string {
	return "tasks"
}

// IsValidTaskStatus checks if the status is valid
func IsValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// IsValidTaskPriority checks if the priority is valid
func IsValidTaskPriority(priority string) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}
