package services

import (
	"time"

	"legal_crm_go/models"

	"gorm.io/gorm"
)

// GetTasks fetches tasks with their contact names joined, newest first.
// Status and priority filters are optional.
func GetTasks(dbConn *gorm.DB, status, priority string) ([]models.Task, error) {
	var tasks []models.Task
	query := dbConn.Preload("Contact").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, storeError(err)
	}
	return tasks, nil
}

// GetTaskByID fetches a single task
func GetTaskByID(dbConn *gorm.DB, id string) (*models.Task, error) {
	var task models.Task
	if err := dbConn.Preload("Contact").First(&task, "id = ?", id).Error; err != nil {
		return nil, storeError(err)
	}
	return &task, nil
}

// CreateTask inserts a new task
func CreateTask(dbConn *gorm.DB, task *models.Task) error {
	return storeError(dbConn.Create(task).Error)
}

// UpdateTask applies a partial update to a task
func UpdateTask(dbConn *gorm.DB, id string, updates map[string]interface{}) error {
	result := dbConn.Model(&models.Task{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes a task
func DeleteTask(dbConn *gorm.DB, id string) error {
	result := dbConn.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleTaskStatus flips a task between Open and Completed. Toggling
// twice restores the original status.
func ToggleTaskStatus(dbConn *gorm.DB, id string) (*models.Task, error) {
	task, err := GetTaskByID(dbConn, id)
	if err != nil {
		return nil, err
	}

	newStatus := models.TaskStatusCompleted
	if task.Status == models.TaskStatusCompleted {
		newStatus = models.TaskStatusOpen
	}

	updates := map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now().UTC(),
	}
	if err := UpdateTask(dbConn, id, updates); err != nil {
		return nil, err
	}

	task.Status = newStatus
	return task, nil
}
