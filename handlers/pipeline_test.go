package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"legal_crm_go/models"

	"github.com/stretchr/testify/assert"
)

func TestGetPipelineHandler(t *testing.T) {
	database := setupTestDB(t)

	t.Run("Empty board is seeded with defaults", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/pipeline", nil)

		err := GetPipelineHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var stages []models.PipelineStage
		json.Unmarshal(rec.Body.Bytes(), &stages)
		assert.Len(t, stages, 7)
		assert.Equal(t, "New Lead", stages[0].Name)
		assert.Equal(t, "Lost", stages[6].Name)
	})

	t.Run("Contacts attach to their stage", func(t *testing.T) {
		var stage models.PipelineStage
		database.Where("name = ?", "Qualified").First(&stage)

		database.Create(&models.Contact{FirstName: "Ada", LastName: "Lovelace", PipelineStageID: &stage.ID})

		_, c, rec := setupEcho(http.MethodGet, "/api/pipeline", nil)
		err := GetPipelineHandler(c)
		assert.NoError(t, err)

		var stages []models.PipelineStage
		json.Unmarshal(rec.Body.Bytes(), &stages)
		for _, s := range stages {
			if s.ID == stage.ID {
				assert.Len(t, s.Contacts, 1)
			} else {
				assert.Empty(t, s.Contacts)
			}
		}
	})
}

func TestGetDashboardHandler(t *testing.T) {
	database := setupTestDB(t)
	database.Create(&models.Contact{FirstName: "Ada", LastName: "Lovelace"})
	database.Create(&models.Case{Title: "Open case", CaseNumber: "DASH-1", Status: models.CaseStatusOpen})
	database.Create(&models.Case{Title: "Closed case", CaseNumber: "DASH-2", Status: models.CaseStatusClosed})
	database.Create(&models.Task{Title: "Pending"})
	database.Create(&models.Task{Title: "Done", Status: models.TaskStatusCompleted})

	_, c, rec := setupEcho(http.MethodGet, "/api/dashboard", nil)

	err := GetDashboardHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &stats)
	assert.Equal(t, float64(1), stats["total_contacts"])
	assert.Equal(t, float64(1), stats["open_cases"])
	assert.Equal(t, float64(1), stats["pending_tasks"])
}
