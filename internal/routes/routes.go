package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaelsantos7520/dermalise-admin/internal/audit"
	"github.com/rafaelsantos7520/dermalise-admin/internal/cache"
	"github.com/rafaelsantos7520/dermalise-admin/internal/config"
	"github.com/rafaelsantos7520/dermalise-admin/internal/handlers"
	infraRepo "github.com/rafaelsantos7520/dermalise-admin/internal/infra/repository"
	"github.com/rafaelsantos7520/dermalise-admin/internal/middleware"
	ucAppointment "github.com/rafaelsantos7520/dermalise-admin/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	statsCache := cache.NewStatsCache(cfg.RedisURL)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	changeStatusUC := ucAppointment.NewChangeAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
		cfg.Timezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)
	procedureHandler := handlers.NewProcedureHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		changeStatusUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(db, statsCache, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================
	r.POST("/auth/login", authHandler.Login)

	// ======================================================
	// ROTAS ADMINISTRATIVAS (session gate único)
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		secured.GET("/clients", clientHandler.List)
		secured.POST("/clients", clientHandler.Create)
		secured.GET("/clients/:id", clientHandler.Get)
		secured.PUT("/clients/:id", clientHandler.Update)
		secured.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// PROFESSIONALS
		// ------------------------------
		secured.GET("/professionals", professionalHandler.List)
		secured.POST("/professionals", professionalHandler.Create)
		secured.GET("/professionals/:id", professionalHandler.Get)
		secured.PUT("/professionals/:id", professionalHandler.Update)
		secured.DELETE("/professionals/:id", professionalHandler.Delete)

		// ------------------------------
		// PROCEDURES
		// ------------------------------
		secured.GET("/procedures", procedureHandler.List)
		secured.POST("/procedures", procedureHandler.Create)
		secured.GET("/procedures/:id", procedureHandler.Get)
		secured.PUT("/procedures/:id", procedureHandler.Update)
		secured.DELETE("/procedures/:id", procedureHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.GET("/appointments", appointmentHandler.List)
		secured.POST("/appointments", appointmentHandler.Create)
		secured.GET("/appointments/:id", appointmentHandler.Get)
		secured.PUT("/appointments/:id", appointmentHandler.Update)
		secured.DELETE("/appointments/:id", appointmentHandler.Delete)
		secured.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)

		// ------------------------------
		// DASHBOARD / AUDIT
		// ------------------------------
		secured.GET("/dashboard/stats", dashboardHandler.Stats)
		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
