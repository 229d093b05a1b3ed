package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vetbook/vet-scheduler/internal/audit"
	"github.com/vetbook/vet-scheduler/internal/config"
	"github.com/vetbook/vet-scheduler/internal/handlers"
	"github.com/vetbook/vet-scheduler/internal/middleware"
	"github.com/vetbook/vet-scheduler/internal/snapshot"
	"github.com/vetbook/vet-scheduler/internal/store"
	ucAppointment "github.com/vetbook/vet-scheduler/internal/usecase/appointment"
	"github.com/vetbook/vet-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	st *store.Store,
	snap snapshot.Store,
	db *gorm.DB,
	cfg *config.Config,
	logger *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var auditLogger *audit.Logger
	if db != nil {
		auditLogger = audit.New(db)
	}
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	bookSlotUC := booking.NewBookSlot(st, auditDispatcher)
	setStatusUC := ucAppointment.NewSetStatus(st, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListByFilter(st)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, auditDispatcher, cfg)
	meHandler := handlers.NewMeHandler(st, auditDispatcher)
	slotHandler := handlers.NewSlotHandler(st, auditDispatcher)
	chatHandler := handlers.NewChatHandler(st)

	appointmentHandler := handlers.NewAppointmentHandler(
		st,
		auditDispatcher,
		bookSlotUC,
		setStatusUC,
		listAppointmentsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/signin", authHandler.Signin)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)

			secured.GET("/doctors", meHandler.Doctors)

			// ------------------------------
			// TIME SLOTS
			// ------------------------------
			secured.GET("/slots", slotHandler.ListAvailable)
			secured.GET("/me/slots", slotHandler.ListMine)
			secured.POST("/me/slots", slotHandler.Create)
			secured.PATCH("/me/slots/:id", slotHandler.Update)
			secured.DELETE("/me/slots/:id", slotHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.POST("/appointments/book", appointmentHandler.Book)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.PUT("/appointments/ui/selected-date", appointmentHandler.SetSelectedDate)
			secured.PUT("/appointments/ui/filters", appointmentHandler.SetFilters)
			secured.DELETE("/appointments/ui/filters", appointmentHandler.ClearFilters)

			// ------------------------------
			// CHAT
			// ------------------------------
			secured.GET("/appointments/:id/messages", chatHandler.List)
			secured.POST("/appointments/:id/messages", chatHandler.Send)
			secured.POST("/appointments/:id/messages/read", chatHandler.MarkRead)
			secured.GET("/appointments/:id/messages/unread", chatHandler.Unread)
		}

		// ------------------------------
		// DEV TOOLING
		// ------------------------------
		if cfg.EnableDevReset {
			resetHandler := handlers.NewResetHandler(st, snap, logger)
			api.POST("/dev/reset", resetHandler.Reset)
			api.DELETE("/dev/messages", chatHandler.ClearAll)
		}
	}
}
