package services

import (
	"testing"

	"legal_crm_go/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateCaseWithParties(t *testing.T) {
	db := setupTestDB(t)

	t.Run("Blank parties skipped", func(t *testing.T) {
		kase := &models.Case{Title: "Estate of Byron", CaseNumber: "SVC-001"}
		parties := CaseParties{
			OpposingClients: []models.PartyDetails{
				{FirstName: "Opposing", LastName: "Party"},
				{}, // entirely blank, skipped
			},
			Witnesses: []models.PartyDetails{
				{FirstName: "Key", LastName: "Witness"},
			},
		}

		err := CreateCaseWithParties(db, kase, parties)
		assert.NoError(t, err)

		fetched, err := GetCaseByID(db, kase.ID)
		assert.NoError(t, err)
		assert.Len(t, fetched.OpposingClients, 1)
		assert.Len(t, fetched.Witnesses, 1)
		assert.Equal(t, "Opposing", fetched.OpposingClients[0].FirstName)
	})

	t.Run("Duplicate case number conflicts", func(t *testing.T) {
		kase := &models.Case{Title: "Duplicate", CaseNumber: "SVC-001"}
		err := CreateCaseWithParties(db, kase, CaseParties{})
		assert.True(t, IsConflict(err))
	})
}

func TestGetCasesStatusFilter(t *testing.T) {
	db := setupTestDB(t)

	client := &models.Client{Name: "Byron Estate"}
	db.Create(client)

	db.Create(&models.Case{Title: "Open", CaseNumber: "SVC-F1", ClientID: &client.ID})
	db.Create(&models.Case{Title: "Closed", CaseNumber: "SVC-F2", Status: models.CaseStatusClosed})

	cases, err := GetCases(db, models.CaseStatusOpen)
	assert.NoError(t, err)
	assert.Len(t, cases, 1)
	assert.Equal(t, "Open", cases[0].Title)
	assert.NotNil(t, cases[0].Client)
	assert.Equal(t, "Byron Estate", cases[0].Client.Name)
}

func TestDeleteCaseLeavesDanglingReferences(t *testing.T) {
	db := setupTestDB(t)

	kase := &models.Case{Title: "Doomed", CaseNumber: "SVC-D1"}
	db.Create(kase)
	hearing := &models.Hearing{CaseID: &kase.ID, CaseTitle: "Doomed", HearingDate: "2026-10-01"}
	db.Create(hearing)

	assert.NoError(t, DeleteCase(db, kase.ID))

	// The hearing row survives with its case reference dangling
	var stored models.Hearing
	assert.NoError(t, db.First(&stored, "id = ?", hearing.ID).Error)
	assert.Equal(t, kase.ID, *stored.CaseID)
	assert.Equal(t, "Doomed", stored.CaseTitle)
}
