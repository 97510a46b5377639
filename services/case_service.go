package services

import (
	"legal_crm_go/models"

	"gorm.io/gorm"
)

// CaseParties carries the repeatable person sub-forms submitted with a
// new case.
type CaseParties struct {
	OpposingClients []models.PartyDetails
	Witnesses       []models.PartyDetails
}

// GetCases fetches cases with client and lawyer names joined, newest
// first. An optional status filters server-side.
func GetCases(dbConn *gorm.DB, status string) ([]models.Case, error) {
	var cases []models.Case
	query := dbConn.Preload("Client").Preload("Lawyer").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&cases).Error; err != nil {
		return nil, storeError(err)
	}
	return cases, nil
}

// GetCaseByID fetches a single case with its relationships
func GetCaseByID(dbConn *gorm.DB, id string) (*models.Case, error) {
	var kase models.Case
	err := dbConn.Preload("Client").Preload("Lawyer").
		Preload("OpposingClients").Preload("Witnesses").
		First(&kase, "id = ?", id).Error
	if err != nil {
		return nil, storeError(err)
	}
	return &kase, nil
}

// CreateCaseWithParties inserts the case, then its opposing clients and
// witnesses. Party sub-forms with no name entered are silently skipped.
// The sequence is not atomic: a failure after the case insert leaves the
// case created without its related rows, matching the dashboard's
// submit semantics.
func CreateCaseWithParties(dbConn *gorm.DB, kase *models.Case, parties CaseParties) error {
	if err := dbConn.Create(kase).Error; err != nil {
		return storeError(err)
	}

	for _, details := range parties.OpposingClients {
		if details.IsBlank() {
			continue
		}
		oc := models.OpposingClient{CaseID: kase.ID, PartyDetails: details}
		if err := dbConn.Create(&oc).Error; err != nil {
			return storeError(err)
		}
	}

	for _, details := range parties.Witnesses {
		if details.IsBlank() {
			continue
		}
		w := models.CaseWitness{CaseID: kase.ID, PartyDetails: details}
		if err := dbConn.Create(&w).Error; err != nil {
			return storeError(err)
		}
	}

	return nil
}

// UpdateCase applies a partial update to a case
func UpdateCase(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	result := dbConn.Model(&models.Case{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCase removes a case. Parties, hearings and documents that
// reference it keep their case_id as a dangling reference.
func DeleteCase(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Case{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateClient inserts a client created inline from the case form modal
func CreateClient(dbConn *gorm.DB, client *models.Client) error {
	return storeError(dbConn.Create(client).Error)
}

// GetClients fetches all clients, newest first
func GetClients(dbConn *gorm.DB) ([]models.Client, error) {
	var clients []models.Client
	if err := dbConn.Order("created_at desc").Find(&clients).Error; err != nil {
		return nil, storeError(err)
	}
	return clients, nil
}
