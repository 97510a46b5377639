package services

import (
	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetPipelineStages returns the board columns ascending by position with
// each stage's contacts attached. When the board is empty the default
// stages are seeded first.
func GetPipelineStages(dbConn *gorm.DB) ([]models.PipelineStage, error) {
	var stages []models.PipelineStage
	if err := dbConn.Order("position asc").Find(&stages).Error; err != nil {
		return nil, storeError(err)
	}

	if len(stages) == 0 {
		defaults := models.DefaultPipelineStages()
		if err := dbConn.Create(&defaults).Error; err != nil {
			return nil, storeError(err)
		}
		return defaults, nil
	}

	// Contacts per stage are independent reads with no ordering
	// requirement among themselves.
	for i := range stages {
		var contacts []models.Contact
		err := dbConn.Where("pipeline_stage_id = ?", stages[i].ID).
			Order("updated_at desc").
			Find(&contacts).Error
		if err != nil {
			return nil, storeError(err)
		}
		stages[i].Contacts = contacts
	}

	return stages, nil
}
