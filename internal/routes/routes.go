package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucAuditLog "github.com/BruksfildServices01/barber-booking/internal/usecase/auditlog"
	ucBarbershop "github.com/BruksfildServices01/barber-booking/internal/usecase/barbershop"
	ucOpeningHours "github.com/BruksfildServices01/barber-booking/internal/usecase/openinghours"
	ucService "github.com/BruksfildServices01/barber-booking/internal/usecase/service"
	ucUser "github.com/BruksfildServices01/barber-booking/internal/usecase/user"
)

// RegisterRoutes monta toda a cadeia de dependências: repositórios →
// casos de uso → handlers → rotas. O cache pode ser nil (sem Redis).
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	c cache.Cache,
) {
	// ---------- infra ----------
	auditor := audit.NewDispatcher(audit.New(db), log)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, 24*time.Hour)

	userRepo := repository.NewUserGormRepository(db)
	shopRepo := repository.NewBarbershopGormRepository(db)
	serviceRepo := repository.NewServiceGormRepository(db)
	hoursRepo := repository.NewOpeningHoursGormRepository(db)
	appointmentRepo := repository.NewAppointmentGormRepository(db)
	auditRepo := repository.NewAuditLogGormRepository(db)

	// ---------- casos de uso ----------
	userService := ucUser.NewService(userRepo, auth.BcryptHasher{}, auditor)
	shopService := ucBarbershop.NewService(shopRepo, auditor)
	serviceService := ucService.NewService(serviceRepo, auditor)
	hoursService := ucOpeningHours.NewService(hoursRepo, auditor)
	auditService := ucAuditLog.NewService(auditRepo)

	createAppointment := ucAppointment.NewCreateAppointment(appointmentRepo, auditor, c)
	cancelAppointment := ucAppointment.NewCancelAppointment(appointmentRepo, auditor, c)
	getAppointment := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointments := ucAppointment.NewListCustomerAppointments(appointmentRepo)
	availability := ucAppointment.NewGetAvailability(appointmentRepo, c)

	// ---------- handlers ----------
	authHandler := handlers.NewAuthHandler(userService, tokens)
	userHandler := handlers.NewUserHandler(userService)
	shopHandler := handlers.NewBarbershopHandler(shopService)
	serviceHandler := handlers.NewServiceHandler(serviceService)
	hoursHandler := handlers.NewOpeningHoursHandler(hoursService)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointment,
		cancelAppointment,
		getAppointment,
		listAppointments,
		availability,
	)
	auditHandler := handlers.NewAuditLogHandler(auditService)

	// ---------- rotas ----------
	api := r.Group("/api")

	// públicas
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	public := api.Group("/public")
	{
		public.GET("/barbershops", shopHandler.GetAll)
		public.GET("/barbershops/:barbershopId", shopHandler.GetByID)
		public.GET("/barbershops/:barbershopId/services", serviceHandler.ListByBarbershop)
		public.GET("/barbershops/:barbershopId/opening-hours", hoursHandler.ListByBarbershop)
		public.GET("/barbershops/:barbershopId/availability", appointmentHandler.Availability)
		public.GET("/services/:id", serviceHandler.GetByID)
	}

	// protegidas
	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/users", userHandler.List)
		secured.GET("/users/:id", userHandler.Get)
		secured.PUT("/users/:id", userHandler.Update)
		secured.DELETE("/users/:id", userHandler.Delete)

		secured.POST("/barbershops", shopHandler.Create)
		secured.PUT("/barbershops/:barbershopId", shopHandler.Update)
		secured.DELETE("/barbershops/:barbershopId", shopHandler.Delete)
		secured.GET("/barbershops/:barbershopId/audit-logs", auditHandler.ListByBarbershop)

		secured.POST("/services", serviceHandler.Create)
		secured.PUT("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)

		secured.POST("/opening-hours", hoursHandler.Create)
		secured.PUT("/opening-hours/:id", hoursHandler.Update)
		secured.DELETE("/opening-hours/:id", hoursHandler.Delete)

		secured.POST("/appointments", appointmentHandler.Create)
		secured.GET("/appointments/:id", appointmentHandler.GetByID)
		secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		secured.GET("/customers/:customerId/appointments", appointmentHandler.ListByCustomer)
	}
}
