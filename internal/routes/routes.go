package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/styleon-app/stylist-scheduler/internal/audit"
	"github.com/styleon-app/stylist-scheduler/internal/config"
	"github.com/styleon-app/stylist-scheduler/internal/handlers"
	infraRepo "github.com/styleon-app/stylist-scheduler/internal/infra/repository"
	"github.com/styleon-app/stylist-scheduler/internal/middleware"
	"github.com/styleon-app/stylist-scheduler/internal/notify"
	ucAvailability "github.com/styleon-app/stylist-scheduler/internal/usecase/availability"
	ucBooking "github.com/styleon-app/stylist-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)
	notifyDispatcher := notify.NewDispatcher(rdb)

	// ------------------------------
	// Use cases: bookings
	// ------------------------------
	getSlotsUC := ucBooking.NewGetSlots(schedulingRepo, cfg.Schedule, cfg.Timezone)

	createBookingUC := ucBooking.NewCreateBooking(
		schedulingRepo,
		cfg.Schedule,
		cfg.Timezone,
		auditDispatcher,
		notifyDispatcher,
	)

	updateStatusUC := ucBooking.NewUpdateBookingStatus(
		schedulingRepo,
		cfg.Timezone,
		auditDispatcher,
		notifyDispatcher,
	)

	rescheduleUC := ucBooking.NewRescheduleBooking(
		schedulingRepo,
		cfg.Schedule,
		cfg.Timezone,
		auditDispatcher,
		notifyDispatcher,
	)

	listClientBookingsUC := ucBooking.NewListClientBookings(schedulingRepo)
	agendaByDateUC := ucBooking.NewListAgendaByDate(schedulingRepo, cfg.Timezone)
	agendaByMonthUC := ucBooking.NewListAgendaByMonth(schedulingRepo, cfg.Timezone)

	// ------------------------------
	// Use cases: availability
	// ------------------------------
	listAvailabilityUC := ucAvailability.NewListAvailability(schedulingRepo)
	addWindowUC := ucAvailability.NewAddWindow(schedulingRepo, auditDispatcher)
	updateWindowUC := ucAvailability.NewUpdateWindow(schedulingRepo, auditDispatcher)
	deleteWindowUC := ucAvailability.NewDeleteWindow(schedulingRepo, auditDispatcher)
	toggleWindowUC := ucAvailability.NewToggleWindow(schedulingRepo, auditDispatcher)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	stylistHandler := handlers.NewStylistHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, getSlotsUC)

	availabilityHandler := handlers.NewAvailabilityHandler(
		db,
		listAvailabilityUC,
		addWindowUC,
		updateWindowUC,
		deleteWindowUC,
		toggleWindowUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		db,
		cfg.Timezone,
		createBookingUC,
		updateStatusUC,
		rescheduleUC,
		listClientBookingsUC,
		agendaByDateUC,
		agendaByMonthUC,
	)

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		// Public browse surface
		api.GET("/stylists/:id", publicHandler.GetStylist)
		api.GET("/stylists/:id/services", publicHandler.ListStylistServices)
		api.GET("/stylists/:id/slots", publicHandler.ListSlots)

		// Auth
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Authenticated surface
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// Reservations (role checks live in the use cases)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.PATCH("/bookings/:id/reschedule", bookingHandler.Reschedule)
			secured.GET("/me/bookings", bookingHandler.MyBookings)

			// Stylist-only surface
			stylist := secured.Group("/me")
			stylist.Use(middleware.RequireRole("stylist"))
			{
				stylist.PATCH("/profile", stylistHandler.UpdateMyProfile)

				stylist.GET("/services", serviceHandler.List)
				stylist.POST("/services", serviceHandler.Create)
				stylist.PATCH("/services/:id", serviceHandler.Update)

				stylist.GET("/availability", availabilityHandler.List)
				stylist.POST("/availability", availabilityHandler.Add)
				stylist.PUT("/availability/:id", availabilityHandler.Update)
				stylist.DELETE("/availability/:id", availabilityHandler.Delete)
				stylist.PATCH("/availability/:id/toggle", availabilityHandler.Toggle)

				stylist.GET("/agenda", bookingHandler.AgendaByDate)
				stylist.GET("/agenda/month", bookingHandler.AgendaByMonth)
			}
		}
	}
}
