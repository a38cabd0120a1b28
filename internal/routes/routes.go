package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/barber-booking/internal/usecase/client"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// Deps reúne a infraestrutura criada em main.
// Redis e Metrics são opcionais.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Config  *config.Config
	Logger  *zap.Logger
	Audit   *audit.Dispatcher
	Metrics *metrics.Metrics

	// MetricsHandler é servido em /metrics quando presente.
	MetricsHandler http.Handler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	clientRepo := infraRepo.NewClientGormRepository(d.DB)

	var scheduleStore domain.ScheduleStore = infraRepo.NewScheduleGormRepository(d.DB)
	if d.Redis != nil {
		scheduleStore = infraRepo.NewCachedScheduleStore(scheduleStore, d.Redis, cfg.CacheTTL, d.Logger)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		scheduleStore,
		appointmentRepo,
		d.Metrics,
		cfg.AvailabilityConcurrency,
		cfg.ShopTimezone,
	)

	listBookableDaysUC := ucAppointment.NewListBookableDays(
		catalogRepo,
		scheduleStore,
		cfg.ShopTimezone,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		catalogRepo,
		clientRepo,
		scheduleStore,
		appointmentRepo,
		d.Audit,
		d.Metrics,
		cfg.ShopTimezone,
	)

	listHistoryUC := ucAppointment.NewListClientHistory(appointmentRepo)

	var checkDomain func(string) bool
	if cfg.CheckEmailDomain {
		checkDomain = validators.IsEmailDomainValid
	}

	registerUC := ucClient.NewRegisterClient(clientRepo, checkDomain)
	authenticateUC := ucClient.NewAuthenticateClient(clientRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, authenticateUC, cfg)
	meHandler := handlers.NewMeHandler(clientRepo)
	barberHandler := handlers.NewBarberHandler(catalogRepo, listBookableDaysUC, getAvailabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(confirmAppointmentUC, listHistoryUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// 🩺 OPERACIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{"status": "ok", "time": time.Now().UTC()}

		if sqlDB, err := d.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = "down"
		}
		if d.Redis != nil && d.Redis.Ping(c.Request.Context()).Err() != nil {
			// cache fora do ar não derruba o serviço
			body["cache"] = "down"
		}

		c.JSON(status, body)
	})

	if d.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(d.MetricsHandler))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 CATÁLOGO / AGENDA (PÚBLICO)
		// ------------------------------
		barbers := api.Group("/barbers")
		{
			barbers.GET("", barberHandler.List)
			barbers.GET("/:id/services", barberHandler.Services)
			barbers.GET("/:id/weekdays", barberHandler.Weekdays)
			barbers.GET("/:id/dates", barberHandler.Dates)
			barbers.GET("/:id/availability", barberHandler.Availability)
		}

		// ------------------------------
		// 🔐 ÁREA DO CLIENTE
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("", meHandler.GetMe)

			secured.POST("/appointments", appointmentHandler.Confirm)
			secured.GET("/appointments", appointmentHandler.History)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
