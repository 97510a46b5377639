package services

import (
	"legal_crm_go/models"

	"gorm.io/gorm"
)

// DashboardStats holds the counters and recent activity for the dashboard page
type DashboardStats struct {
	TotalContacts        int64                `json:"total_contacts"`
	OpenCases            int64                `json:"open_cases"`
	PendingTasks         int64                `json:"pending_tasks"`
	UpcomingAppointments int64                `json:"upcoming_appointments"`
	RecentCases          []models.Case        `json:"recent_cases"`
	RecentTasks          []models.Task        `json:"recent_tasks"`
	NextAppointments     []models.Appointment `json:"next_appointments"`
}

// GetDashboardStats gathers the dashboard counters. Each count is an
// independent read; no cross-consistency is guaranteed between them.
func GetDashboardStats(dbConn *gorm.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := dbConn.Model(&models.Contact{}).Count(&stats.TotalContacts).Error; err != nil {
		return nil, storeError(err)
	}
	if err := dbConn.Model(&models.Case{}).Where("status = ?", models.CaseStatusOpen).Count(&stats.OpenCases).Error; err != nil {
		return nil, storeError(err)
	}
	if err := dbConn.Model(&models.Task{}).Where("status != ?", models.TaskStatusCompleted).Count(&stats.PendingTasks).Error; err != nil {
		return nil, storeError(err)
	}
	if err := dbConn.Model(&models.Appointment{}).Where("status = ?", models.AppointmentStatusScheduled).Count(&stats.UpcomingAppointments).Error; err != nil {
		return nil, storeError(err)
	}

	if err := dbConn.Preload("Client").Order("created_at desc").Limit(5).Find(&stats.RecentCases).Error; err != nil {
		return nil, storeError(err)
	}
	if err := dbConn.Preload("Contact").Where("status != ?", models.TaskStatusCompleted).
		Order("created_at desc").Limit(5).Find(&stats.RecentTasks).Error; err != nil {
		return nil, storeError(err)
	}
	if err := dbConn.Preload("Contact").Where("status = ?", models.AppointmentStatusScheduled).
		Order("start_time asc").Limit(5).Find(&stats.NextAppointments).Error; err != nil {
		return nil, storeError(err)
	}

	return stats, nil
}
