package app

import (
	"context"
	"errors"
	"fmt"

	"mccare_backend/database"
	"mccare_backend/internal/auth"
	"mccare_backend/internal/config"
	"mccare_backend/internal/email"
	"mccare_backend/internal/handlers"
	"mccare_backend/internal/logger"
	"mccare_backend/internal/middleware"
	"mccare_backend/internal/models"
	"mccare_backend/internal/repositories"
	"mccare_backend/internal/routes"
	"mccare_backend/internal/services"
	"mccare_backend/internal/validator"
	"mccare_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB)

	worker := workers.NewCredentialWorker(serviceContainer.ScannerService, cfg.Scanner.RunHourUTC)
	worker.Start(context.Background())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, initializeHandlers(serviceContainer))

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	templates, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}
	emailProvider := email.NewSMTPProvider(email.FromAppConfig(cfg), templates)

	userRepo := repositories.NewUserRepository(gormDB)
	leadRepo := repositories.NewLeadRepository(gormDB)
	candidateRepo := repositories.NewCandidateRepository(gormDB)
	documentRepo := repositories.NewDocumentRepository(gormDB)
	facilityRepo := repositories.NewFacilityRepository(gormDB)
	jobOrderRepo := repositories.NewJobOrderRepository(gormDB)
	assignmentRepo := repositories.NewAssignmentRepository(gormDB)
	timesheetRepo := repositories.NewTimesheetRepository(gormDB)
	activityRepo := repositories.NewActivityRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	settingsRepo := repositories.NewSettingsRepository(gormDB)
	auditRepo := repositories.NewLeadAuditRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo, settingsRepo, userRepo, emailProvider, cfg.Server.BaseURL)
	scannerService := services.NewCredentialScannerService(documentRepo, candidateRepo, userRepo, settingsRepo, notificationService, cfg.Server.BaseURL)
	intakeService := services.NewLeadIntakeService(leadRepo, candidateRepo, auditRepo, activityRepo, settingsRepo, notificationService)
	leadService := services.NewLeadService(leadRepo, candidateRepo, userRepo, activityRepo, intakeService)
	authService := services.NewAuthService(userRepo)
	candidateService := services.NewCandidateService(candidateRepo, activityRepo)
	documentService := services.NewDocumentService(documentRepo, candidateRepo, activityRepo)
	facilityService := services.NewFacilityService(facilityRepo)
	jobOrderService := services.NewJobOrderService(jobOrderRepo, facilityRepo, candidateRepo, activityRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo, candidateRepo, jobOrderRepo, facilityRepo, activityRepo)
	timesheetService := services.NewTimesheetService(timesheetRepo, assignmentRepo, candidateRepo, facilityRepo)
	activityService := services.NewActivityService(activityRepo)
	dashboardService := services.NewDashboardService(leadRepo, candidateRepo, facilityRepo, jobOrderRepo, assignmentRepo, timesheetRepo, documentRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		LeadService:         leadService,
		LeadIntakeService:   intakeService,
		CandidateService:    candidateService,
		DocumentService:     documentService,
		FacilityService:     facilityService,
		JobOrderService:     jobOrderService,
		AssignmentService:   assignmentService,
		TimesheetService:    timesheetService,
		ActivityService:     activityService,
		DashboardService:    dashboardService,
		NotificationService: notificationService,
		ScannerService:      scannerService,
		EmailService:        emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		LeadHandler:         handlers.NewLeadHandler(baseHandler, container.LeadService, container.LeadIntakeService),
		CandidateHandler:    handlers.NewCandidateHandler(baseHandler, container.CandidateService, container.DocumentService, container.ActivityService),
		DocumentHandler:     handlers.NewDocumentHandler(baseHandler, container.DocumentService),
		FacilityHandler:     handlers.NewFacilityHandler(baseHandler, container.FacilityService),
		JobOrderHandler:     handlers.NewJobOrderHandler(baseHandler, container.JobOrderService),
		AssignmentHandler:   handlers.NewAssignmentHandler(baseHandler, container.AssignmentService),
		TimesheetHandler:    handlers.NewTimesheetHandler(baseHandler, container.TimesheetService),
		DashboardHandler:    handlers.NewDashboardHandler(baseHandler, container.DashboardService, container.ActivityService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService, container.ScannerService),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin bootstraps the first admin account from config so a
// fresh deployment can log in. Skipped when credentials are not set.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		FirstName:    "System",
		LastName:     "Admin",
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
