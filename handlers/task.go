package handlers

import (
	"net/http"

	"legal_crm_go/db"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
)

// GetTasksHandler returns tasks, optionally filtered by status and priority
func GetTasksHandler(c echo.Context) error {
	status := c.QueryParam("status")
	priority := c.QueryParam("priority")
	if status != "" && !models.IsValidTaskStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task status filter")
	}
	if priority != "" && !models.IsValidTaskPriority(priority) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task priority filter")
	}

	tasks, err := services.GetTasks(db.DB, status, priority)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

// GetTaskHandler returns a single task by id
func GetTaskHandler(c echo.Context) error {
	task, err := services.GetTaskByID(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to fetch task")
	}
	return c.JSON(http.StatusOK, task)
}

// CreateTaskHandler creates a new task
func CreateTaskHandler(c echo.Context) error {
	var req struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		ContactID   string `json:"contact_id" form:"contact_id"`
		DueDate     string `json:"due_date" form:"due_date"`
		Priority    string `json:"priority" form:"priority"`
		Status      string `json:"status" form:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if req.Priority != "" && !models.IsValidTaskPriority(req.Priority) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task priority")
	}
	if req.Status != "" && !models.IsValidTaskStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task status")
	}

	task := &models.Task{
		Title:       req.Title,
		Description: optional(req.Description),
		ContactID:   optional(req.ContactID),
		DueDate:     optional(req.DueDate),
		Priority:    req.Priority,
		Status:      req.Status,
	}
	if err := services.CreateTask(db.DB, task); err != nil {
		return storeHTTPError(err, "Failed to create task")
	}
	return c.JSON(http.StatusCreated, task)
}

// UpdateTaskHandler applies a partial update to a task
func UpdateTaskHandler(c echo.Context) error {
	var req struct {
		Title       *string `json:"title" form:"title"`
		Description *string `json:"description" form:"description"`
		ContactID   *string `json:"contact_id" form:"contact_id"`
		DueDate     *string `json:"due_date" form:"due_date"`
		Priority    *string `json:"priority" form:"priority"`
		Status      *string `json:"status" form:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Title != nil && *req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title cannot be empty")
	}
	if req.Priority != nil && !models.IsValidTaskPriority(*req.Priority) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task priority")
	}
	if req.Status != nil && !models.IsValidTaskStatus(*req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task status")
	}

	updates := map[string]interface{}{}
	applyString(updates, "title", req.Title, false)
	applyString(updates, "description", req.Description, true)
	applyString(updates, "contact_id", req.ContactID, true)
	applyString(updates, "due_date", req.DueDate, true)
	applyString(updates, "priority", req.Priority, false)
	applyString(updates, "status", req.Status, false)

	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	id := c.Param("id")
	if err := services.UpdateTask(db.DB, id, updates); err != nil {
		return storeHTTPError(err, "Failed to update task")
	}

	task, err := services.GetTaskByID(db.DB, id)
	if err != nil {
		return storeHTTPError(err, "Failed to fetch task")
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTaskHandler deletes a task
func DeleteTaskHandler(c echo.Context) error {
	if err := services.DeleteTask(db.DB, c.Param("id")); err != nil {
		return storeHTTPError(err, "Failed to delete task")
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleTaskHandler flips a task between Open and Completed
func ToggleTaskHandler(c echo.Context) error {
	task, err := services.ToggleTaskStatus(db.DB, c.Param("id"))
	if err != nil {
		return storeHTTPError(err, "Failed to toggle task")
	}
	return c.JSON(http.StatusOK, task)
}
