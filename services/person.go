package services

import (
	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetPeople fetches people with their case titles joined, newest first.
// An optional role filters server-side (Clients / Opposing Clients /
// Case Witness pages).
func GetPeople(dbConn *gorm.DB, role string) ([]models.Person, error) {
	var people []models.Person
	query := dbConn.Preload("Case").Order("created_at desc")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&people).Error; err != nil {
		return nil, storeError(err)
	}
	return people, nil
}

// GetPersonByID fetches a single person
func GetPersonByID(dbConn *gorm.DB, id string) (*models.Person, error) {
	var person models.Person
	if err := dbConn.Preload("Case").First(&person, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &person, nil
}

// CreatePerson inserts a new person
func CreatePerson(dbConn *gorm.DB, person *models.Person) error {
	return storeError(dbConn.Create(person).Error)
}

// UpdatePerson applies a partial update to a person
func UpdatePerson(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	result := dbConn.Model(&models.Person{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePerson removes a person
func DeletePerson(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Person{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
