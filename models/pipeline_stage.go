package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PipelineStage represents a column on the sales pipeline board
type PipelineStage struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Position int    `gorm:"not null;index" json:"position"`

	Contacts []Contact `gorm:"foreignKey:PipelineStageID" json:"contacts,omitempty"`
}

// BeforeCreate hook to generate UUID
func (s *PipelineStage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for PipelineStage model
func (PipelineStage) TableName() string {
	return "pipeline_stages"
}

// DefaultPipelineStages returns the stages seeded when the board is empty.
func DefaultPipelineStages() []PipelineStage {
	names := []string{"New Lead", "Contacted", "Qualified", "Proposal", "Negotiation", "Won", "Lost"}
	stages := make([]PipelineStage, 0, len(names))
	for i, name := range names {
		stages = append(stages, PipelineStage{Name: name, Position: i})
	}
	return stages
}
