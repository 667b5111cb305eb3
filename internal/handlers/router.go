package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/placeprep/readiness-service/internal/services"
	"github.com/placeprep/readiness-service/internal/session"
	"github.com/placeprep/readiness-service/internal/utils"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	recordHandler    *RecordHandler
	dashboardHandler *DashboardHandler
	adminHandler     *AdminHandler
	sessionMW        *SessionMiddleware
}

type HandlerConfig struct {
	UploadDir         string
	SessionTTLSeconds int
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	sessions *session.Manager,
	cfg HandlerConfig,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Auth(), sessions, cfg.SessionTTLSeconds, logger),
		recordHandler:    NewRecordHandler(serviceManager.Record(), cfg.UploadDir, logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Readiness(), logger),
		adminHandler: NewAdminHandler(
			serviceManager.Auth(),
			serviceManager.Leaderboard(),
			serviceManager.Export(),
			serviceManager.Store(),
			sessions,
			cfg.SessionTTLSeconds,
			logger,
		),
		sessionMW: NewSessionMiddleware(sessions),
	}
}

// SetupRoutes sets up all application routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/", hm.authHandler.Home)
	router.GET("/register", hm.authHandler.ShowRegister)
	router.POST("/register", hm.authHandler.Register)
	router.GET("/login", hm.authHandler.ShowLogin)
	router.POST("/login", hm.authHandler.Login)
	router.GET("/logout", hm.authHandler.Logout)
	router.GET("/admin_login", hm.adminHandler.ShowAdminLogin)
	router.POST("/admin_login", hm.adminHandler.AdminLogin)
	router.GET("/admin_logout", hm.adminHandler.AdminLogout)

	// Authenticated student routes
	user := router.Group("/")
	user.Use(hm.sessionMW.RequireUser())
	{
		// The dashboard page historically accepted form posts too.
		user.GET("/dashboard", hm.dashboardHandler.Dashboard)
		user.POST("/dashboard", hm.dashboardHandler.Dashboard)
		user.POST("/add_aptitude", hm.recordHandler.AddAptitude)
		user.POST("/add_certification", hm.recordHandler.AddCertification)
		user.POST("/upload_resume", hm.recordHandler.UploadResume)
	}

	// Admin routes
	admin := router.Group("/")
	admin.Use(hm.sessionMW.RequireAdmin())
	{
		admin.GET("/admin_dashboard", hm.adminHandler.AdminDashboard)
		admin.GET("/export_csv", hm.adminHandler.ExportCSV)
		admin.GET("/export_xlsx", hm.adminHandler.ExportXLSX)
		admin.GET("/reset_database", hm.adminHandler.ResetDatabase)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "readiness-service",
		})
	})
}
