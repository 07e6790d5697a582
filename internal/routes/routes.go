package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucDashboard "github.com/BruksfildServices01/barber-booking/internal/usecase/dashboard"
)

// Deps are the process-wide collaborators built once in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Location *time.Location

	Notifier ucBooking.Notifier
	Audit    *audit.Dispatcher
	AuditLog *audit.Logger

	// Nil when the matching feature is not configured.
	Avatars handlers.AvatarUploader
	Gateway ucBooking.PaymentGateway
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	reportRepo := infraRepo.NewReportGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(d.Location, handlers.BookingUseCases{
		Create:       ucBooking.NewCreateBooking(bookingRepo, d.Notifier, d.Audit),
		List:         ucBooking.NewListBookings(bookingRepo, d.Location),
		Next:         ucBooking.NewNextBooking(bookingRepo),
		Availability: ucBooking.NewCheckAvailability(bookingRepo, d.Location),
		Slots:        ucBooking.NewListSlots(bookingRepo, d.Location),
		Approve:      ucBooking.NewApproveBooking(bookingRepo, d.Notifier, d.Audit),
		UpdateStatus: ucBooking.NewUpdateBookingStatus(bookingRepo, d.Notifier, d.Audit),
		Reschedule:   ucBooking.NewRescheduleBooking(bookingRepo, d.Audit),
		Cancel:       ucBooking.NewCancelBooking(bookingRepo, d.Audit),
		Checkout:     ucBooking.NewStartCheckout(bookingRepo, d.Gateway, d.Audit),
	})

	dashboardHandler := handlers.NewDashboardHandler(
		d.Location,
		ucDashboard.NewGetDashboard(reportRepo, d.Location),
		ucDashboard.NewGetFinance(reportRepo, d.Location),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB, d.Avatars)
	usersHandler := handlers.NewUsersHandler(d.DB)
	serviceHandler := handlers.NewServiceHandler(d.DB)
	scheduleHandler := handlers.NewScheduleHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLog, d.Location)

	barberOnly := middleware.RequireRole(models.RoleBarber)
	clientOnly := middleware.RequireRole(models.RoleClient)

	// ------------------------------
	// AUTH
	// ------------------------------
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Config))
	{
		secured.GET("/me", meHandler.GetMe)
		secured.PUT("/me/avatar", meHandler.UploadAvatar)

		secured.GET("/me/schedule", barberOnly, scheduleHandler.Get)
		secured.PUT("/me/schedule", barberOnly, scheduleHandler.Update)
		secured.GET("/me/audit-logs", barberOnly, auditLogsHandler.List)

		secured.GET("/users", usersHandler.List)
		secured.GET("/barbers/:id", usersHandler.GetBarber)

		secured.GET("/services", serviceHandler.List)
		secured.POST("/services", barberOnly, serviceHandler.Create)
		secured.PUT("/services/:id", barberOnly, serviceHandler.Update)
		secured.DELETE("/services/:id", barberOnly, serviceHandler.Delete)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		secured.POST("/bookings", clientOnly, bookingHandler.Create)
		secured.GET("/bookings", bookingHandler.List)
		secured.GET("/bookings/me", clientOnly, bookingHandler.Next)
		secured.GET("/bookings/availability", bookingHandler.Availability)
		secured.GET("/bookings/slots", bookingHandler.Slots)
		secured.PATCH("/bookings/:id/approve", barberOnly, bookingHandler.Approve)
		secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
		secured.PATCH("/bookings/:id/date", bookingHandler.UpdateDate)
		secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		secured.POST("/bookings/:id/checkout", clientOnly, bookingHandler.Checkout)

		secured.GET("/dashboard", barberOnly, dashboardHandler.Dashboard)
		secured.GET("/finance", barberOnly, dashboardHandler.Finance)
	}
}
