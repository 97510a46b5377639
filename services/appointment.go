package services

import (
	"errors"
	"time"

	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetAppointments fetches appointments with their contact joined, sorted
// ascending by start time.
func GetAppointments(dbConn *gorm.DB, status string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	query := dbConn.Preload("Contact").Order("start_time asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&appointments).Error; err != nil {
		return nil, storeError(err)
	}
	return appointments, nil
}

// GetAppointmentByID fetches a single appointment
func GetAppointmentByID(dbConn *gorm.DB, id string) (*models.Appointment, error) {
	var apt models.Appointment
	if err := dbConn.Preload("Contact").First(&apt, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &apt, nil
}

// ErrInvalidTimeRange rejects appointments that do not start before they end.
var ErrInvalidTimeRange = errors.New("start time must be before end time")

// CreateAppointment inserts a new appointment
func CreateAppointment(dbConn *gorm.DB, apt *models.Appointment) error {
	if !apt.StartTime.Before(apt.EndTime) {
		return ErrInvalidTimeRange
	}
	return storeError(dbConn.Create(apt).Error)
}

// UpdateAppointment applies a partial update to an appointment. Moving
// either bound revalidates the resulting range against the stored row.
func UpdateAppointment(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	_, hasStart := updates["start_time"]
	_, hasEnd := updates["end_time"]
	if hasStart || hasEnd {
		current, err := GetAppointmentByID(dbConn, id)
		if err != nil {
			return err
		}
		start, end := current.StartTime, current.EndTime
		if v, ok := updates["start_time"].(time.Time); ok {
			start = v
		}
		if v, ok := updates["end_time"].(time.Time); ok {
			end = v
		}
		if !start.Before(end) {
			return ErrInvalidTimeRange
		}
	}

	result := dbConn.Model(&models.Appointment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAppointment removes an appointment
func DeleteAppointment(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
