package routes

import (
	"ClinicDesk/cache"
	"ClinicDesk/config"
	"ClinicDesk/controllers"
	"ClinicDesk/database"
	"ClinicDesk/handlers"
	"ClinicDesk/logger"
	"ClinicDesk/middlewares"
	"ClinicDesk/repositories"
	"ClinicDesk/services"
	"ClinicDesk/utils"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Services bundles the services the router serves.
type Services struct {
	Invoices     *services.InvoiceService
	Patients     *services.PatientService
	Appointments *services.AppointmentService
	Doctors      *services.DoctorService
}

// NewServices wires the repositories over db and Redis into services. Cached
// reads left from a previous run are dropped first.
func NewServices(ctx context.Context, cfg *config.AppConfig, log *logger.Logger, db *gorm.DB, client *redis.Client) (*Services, error) {
	c, err := cache.NewCache(client)
	if err != nil {
		return nil, err
	}
	if err := repositories.ResetCaches(ctx, c); err != nil {
		log.WithComponent("routes").WithError(err).Warn("Failed to reset cached reads")
	}
	locker := database.NewLocker(client)

	shares, err := utils.NewShareTokens(cfg.ShareTokenKey, cfg.ShareTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize share tokens: %w", err)
	}

	var mailer services.EmailSender
	if m := utils.NewMailer(cfg.SMTP); m != nil {
		mailer = m
	} else {
		log.WithComponent("routes").Warn("SMTP_HOST is not set, outgoing email is disabled")
	}

	invoiceRepo := repositories.NewInvoiceRepository(db, c, locker, log)
	patientRepo := repositories.NewPatientRepository(db, c, locker, log)
	appointmentRepo := repositories.NewAppointmentRepository(db, c, log)
	doctorRepo := repositories.NewDoctorRepository(db, c, log)

	return &Services{
		Invoices: services.NewInvoiceService(invoiceRepo, patientRepo, shares, mailer, services.InvoiceOptions{
			ClinicName:    cfg.ClinicName,
			PublicBaseURL: cfg.PublicBaseURL,
		}, log),
		Patients:     services.NewPatientService(patientRepo),
		Appointments: services.NewAppointmentService(appointmentRepo, mailer, cfg.ClinicName, log),
		Doctors:      services.NewDoctorService(doctorRepo),
	}, nil
}

// SetupRoutes initializes the routes and middleware for the server. Public
// routes are rate limited per client; staff routes require the bearer token.
func SetupRoutes(cfg *config.AppConfig, log *logger.Logger, svc *Services) http.Handler {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.LoggingMiddleware(log))

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	invoiceHandler := handlers.NewInvoiceHandler(svc.Invoices, log)
	patientHandler := handlers.NewPatientHandler(svc.Patients, log)
	appointmentHandler := handlers.NewAppointmentHandler(svc.Appointments, log)
	doctorHandler := handlers.NewDoctorHandler(svc.Doctors, log)

	controllers.SetupRootRoute(router)

	public := router.Group("")
	public.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	controllers.SetupPublicRoutes(public, appointmentHandler, doctorHandler, invoiceHandler)

	admin := router.Group("/api/admin")
	admin.Use(middlewares.ValidateBearerToken(cfg.GetBearerToken()))
	controllers.SetupAdminRoutes(admin, invoiceHandler, patientHandler, appointmentHandler, doctorHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return router
}
