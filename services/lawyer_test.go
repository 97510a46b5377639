package services

import (
	"testing"
	"time"

	"legal_crm_go/models"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateLawyer(t *testing.T) {
	db := setupTestDB(t)

	original := &models.Lawyer{
		Name:              "Jane Counsel",
		Email:             strPtr("jane@firm.test"),
		TimeBasedBillRate: floatPtr(250),
		PaymentDetails: models.PaymentDetailList{
			{PaymentFor: "Retainer", PaidAmount: "1500"},
		},
	}
	db.Create(original)

	copy, err := DuplicateLawyer(db, original.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, original.ID, copy.ID)
	assert.Equal(t, "Jane Counsel (Copy)", copy.Name)
	assert.Equal(t, *original.Email, *copy.Email)
	assert.Equal(t, 250.0, *copy.TimeBasedBillRate)
	assert.Len(t, copy.PaymentDetails, 1)

	// Both rows exist independently
	var count int64
	db.Model(&models.Lawyer{}).Count(&count)
	assert.Equal(t, int64(2), count)

	_, err = DuplicateLawyer(db, "missing")
	assert.True(t, IsNotFound(err))
}

func TestDuplicateLawyerLeadsNewestFirstList(t *testing.T) {
	db := setupTestDB(t)

	original := &models.Lawyer{Name: "Jane Counsel", CreatedAt: time.Now().Add(-time.Hour)}
	db.Create(original)

	copy, err := DuplicateLawyer(db, original.ID)
	assert.NoError(t, err)
	assert.True(t, copy.CreatedAt.After(original.CreatedAt))

	lawyers, err := GetLawyers(db)
	assert.NoError(t, err)
	assert.Len(t, lawyers, 2)
	assert.Equal(t, copy.ID, lawyers[0].ID)
}

func floatPtr(f float64) *float64 {
	return &f
}
