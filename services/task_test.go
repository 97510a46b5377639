package services

import (
	"testing"

	"legal_crm_go/models"

	"github.com/stretchr/testify/assert"
)

func TestToggleTaskStatus(t *testing.T) {
	db := setupTestDB(t)

	task := &models.Task{Title: "Flip me"}
	db.Create(task)

	toggled, err := ToggleTaskStatus(db, task.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, toggled.Status)

	// Toggling twice restores the original status
	toggled, err = ToggleTaskStatus(db, task.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.TaskStatusOpen, toggled.Status)

	_, err = ToggleTaskStatus(db, "missing")
	assert.True(t, IsNotFound(err))
}

func TestToggleDoesNotTouchOtherFields(t *testing.T) {
	db := setupTestDB(t)

	task := &models.Task{Title: "Keep my fields", Priority: models.TaskPriorityHigh, DueDate: strPtr("2026-09-15")}
	db.Create(task)

	_, err := ToggleTaskStatus(db, task.ID)
	assert.NoError(t, err)

	var stored models.Task
	db.First(&stored, "id = ?", task.ID)
	assert.Equal(t, models.TaskPriorityHigh, stored.Priority)
	assert.Equal(t, "2026-09-15", *stored.DueDate)
}

func TestDeleteTaskRemovesFromAllViews(t *testing.T) {
	db := setupTestDB(t)

	keep := &models.Task{Title: "Keep"}
	doomed := &models.Task{Title: "Doomed", Priority: models.TaskPriorityHigh}
	db.Create(keep)
	db.Create(doomed)

	assert.NoError(t, DeleteTask(db, doomed.ID))

	all, err := GetTasks(db, "", "")
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	filtered, err := GetTasks(db, models.TaskStatusOpen, models.TaskPriorityHigh)
	assert.NoError(t, err)
	assert.Empty(t, filtered)

	// A second delete reports the row as gone
	assert.True(t, IsNotFound(DeleteTask(db, doomed.ID)))
}

func TestGetTasksFilters(t *testing.T) {
	db := setupTestDB(t)

	contact := &models.Contact{FirstName: "Ada", LastName: "Lovelace"}
	db.Create(contact)

	db.Create(&models.Task{Title: "Open high", Priority: models.TaskPriorityHigh, ContactID: &contact.ID})
	db.Create(&models.Task{Title: "Done low", Priority: models.TaskPriorityLow, Status: models.TaskStatusCompleted})

	t.Run("Combined filters", func(t *testing.T) {
		tasks, err := GetTasks(db, models.TaskStatusOpen, models.TaskPriorityHigh)
		assert.NoError(t, err)
		assert.Len(t, tasks, 1)
		assert.Equal(t, "Open high", tasks[0].Title)
	})

	t.Run("Contact joined", func(t *testing.T) {
		tasks, err := GetTasks(db, models.TaskStatusOpen, "")
		assert.NoError(t, err)
		assert.Len(t, tasks, 1)
		assert.NotNil(t, tasks[0].Contact)
		assert.Equal(t, "Ada", tasks[0].Contact.FirstName)
	})
}
