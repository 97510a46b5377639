package services

import (
	"bytes"
	"testing"

	"legal_crm_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestExportContactsExcel(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: strPtr("ada@example.com")})
	db.Create(&models.Contact{FirstName: "Grace", LastName: "Hopper"})

	buf, err := ExportContactsExcel(db)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contacts")
	assert.NoError(t, err)
	assert.Len(t, rows, 3) // header + 2 contacts
	assert.Equal(t, "First Name", rows[0][0])

	// Nil optional fields export as empty cells, not literal "nil"
	for _, row := range rows[1:] {
		if row[0] == "Grace" {
			assert.True(t, len(row) < 3 || row[2] == "")
		}
	}
}

func TestExportCasesExcel(t *testing.T) {
	db := setupTestDB(t)

	client := &models.Client{Name: "Byron Estate"}
	db.Create(client)
	db.Create(&models.Case{Title: "Estate of Byron", CaseNumber: "XLS-001", ClientID: &client.ID})

	buf, err := ExportCasesExcel(db)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cases")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Estate of Byron", rows[1][0])
	assert.Equal(t, "Byron Estate", rows[1][2])
}
