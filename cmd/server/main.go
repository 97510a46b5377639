package main

import (
	"log"

	"legal_crm_go/config"
	"legal_crm_go/db"
	"legal_crm_go/handlers"
	"legal_crm_go/models"
	"legal_crm_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	handlers.AppConfig = cfg

	// Initialize the record store
	if err := db.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Document storage (R2 when configured, local disk otherwise)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	api := e.Group("/api")
	{
		api.GET("/dashboard", handlers.GetDashboardHandler)

		// Contacts
		api.GET("/contacts", handlers.GetContactsHandler)
		api.POST("/contacts", handlers.CreateContactHandler)
		api.GET("/contacts/export", handlers.ExportContactsHandler)
		api.GET("/contacts/:id", handlers.GetContactHandler)
		api.PUT("/contacts/:id", handlers.UpdateContactHandler)
		api.DELETE("/contacts/:id", handlers.DeleteContactHandler)
		api.PUT("/contacts/:id/stage", handlers.MoveContactStageHandler)

		// Pipeline board
		api.GET("/pipeline", handlers.GetPipelineHandler)

		// Cases
		api.GET("/cases", handlers.GetCasesHandler)
		api.POST("/cases", handlers.CreateCaseHandler)
		api.GET("/cases/export", handlers.ExportCasesHandler)
		api.GET("/cases/:id", handlers.GetCaseHandler)
		api.PUT("/cases/:id", handlers.UpdateCaseHandler)
		api.DELETE("/cases/:id", handlers.DeleteCaseHandler)
		api.GET("/cases/:id/summary.pdf", handlers.CaseSummaryPDFHandler)

		// Clients (case form dropdown + inline modal)
		api.GET("/clients", handlers.GetClientsHandler)
		api.POST("/clients", handlers.CreateClientHandler)

		// Lawyers
		api.GET("/lawyers", handlers.GetLawyersHandler)
		api.POST("/lawyers", handlers.CreateLawyerHandler)
		api.GET("/lawyers/:id", handlers.GetLawyerHandler)
		api.PUT("/lawyers/:id", handlers.UpdateLawyerHandler)
		api.DELETE("/lawyers/:id", handlers.DeleteLawyerHandler)
		api.POST("/lawyers/:id/duplicate", handlers.DuplicateLawyerHandler)

		// People
		api.GET("/people", handlers.GetPeopleHandler)
		api.POST("/people", handlers.CreatePersonHandler)
		api.GET("/people/:id", handlers.GetPersonHandler)
		api.PUT("/people/:id", handlers.UpdatePersonHandler)
		api.DELETE("/people/:id", handlers.DeletePersonHandler)

		// Tasks
		api.GET("/tasks", handlers.GetTasksHandler)
		api.POST("/tasks", handlers.CreateTaskHandler)
		api.GET("/tasks/:id", handlers.GetTaskHandler)
		api.PUT("/tasks/:id", handlers.UpdateTaskHandler)
		api.DELETE("/tasks/:id", handlers.DeleteTaskHandler)
		api.PUT("/tasks/:id/toggle", handlers.ToggleTaskHandler)

		// Appointments
		api.GET("/appointments", handlers.GetAppointmentsHandler)
		api.POST("/appointments", handlers.CreateAppointmentHandler)
		api.GET("/appointments/:id", handlers.GetAppointmentHandler)
		api.PUT("/appointments/:id", handlers.UpdateAppointmentHandler)
		api.DELETE("/appointments/:id", handlers.DeleteAppointmentHandler)

		// Email templates and campaigns
		api.GET("/email-templates", handlers.GetEmailTemplatesHandler)
		api.POST("/email-templates", handlers.CreateEmailTemplateHandler)
		api.GET("/email-templates/:id", handlers.GetEmailTemplateHandler)
		api.PUT("/email-templates/:id", handlers.UpdateEmailTemplateHandler)
		api.DELETE("/email-templates/:id", handlers.DeleteEmailTemplateHandler)
		api.POST("/email-templates/:id/send", handlers.SendCampaignHandler)

		// Intake forms
		api.GET("/forms", handlers.GetFormsHandler)
		api.POST("/forms", handlers.CreateFormHandler)
		api.GET("/forms/:id", handlers.GetFormHandler)
		api.PUT("/forms/:id", handlers.UpdateFormHandler)
		api.DELETE("/forms/:id", handlers.DeleteFormHandler)
		api.POST("/forms/:id/verify", handlers.VerifyFormPasswordHandler)

		// Audiences
		api.GET("/audiences", handlers.GetAudiencesHandler)
		api.POST("/audiences", handlers.CreateAudienceHandler)

		// Hearings
		api.GET("/hearings", handlers.GetHearingsHandler)
		api.POST("/hearings", handlers.CreateHearingHandler)
		api.GET("/hearings/:id", handlers.GetHearingHandler)
		api.PUT("/hearings/:id", handlers.UpdateHearingHandler)
		api.DELETE("/hearings/:id", handlers.DeleteHearingHandler)

		// Case points
		api.GET("/case-points", handlers.GetCasePointsHandler)
		api.POST("/case-points", handlers.CreateCasePointHandler)
		api.GET("/case-points/:id", handlers.GetCasePointHandler)
		api.PUT("/case-points/:id", handlers.UpdateCasePointHandler)
		api.DELETE("/case-points/:id", handlers.DeleteCasePointHandler)

		// Documents
		api.GET("/documents", handlers.GetDocumentsHandler)
		api.POST("/documents", handlers.UploadDocumentHandler)
		api.GET("/documents/:id/download", handlers.DownloadDocumentHandler)
		api.DELETE("/documents/:id", handlers.DeleteDocumentHandler)

		// Settings directories
		api.GET("/settings/:category", handlers.GetSettingOptionsHandler)
		api.POST("/settings/:category", handlers.CreateSettingOptionHandler)
		api.PUT("/settings/:category/:id", handlers.UpdateSettingOptionHandler)
		api.DELETE("/settings/:category/:id", handlers.DeleteSettingOptionHandler)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
