// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepo "medibook/database/repository/appointment"
	availabilityRepo "medibook/database/repository/availability"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/services/doctor"
	"medibook/services/tasks"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type stores struct {
	doctors      doctorRepo.DoctorRepository
	appointments appointmentRepo.AppointmentRepository
	availability availabilityRepo.AvailabilityRepository
	checks       map[string]utils.HealthCheck
}

func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) stores {
	if cfg.StorageDriver == "memory" {
		logger.Info("Using in-memory storage")
		return stores{
			doctors:      doctorRepo.NewMemoryDoctorRepo(),
			appointments: appointmentRepo.NewMemoryAppointmentRepo(),
			availability: availabilityRepo.NewMemoryAvailabilityRepo(),
			checks:       map[string]utils.HealthCheck{},
		}
	}

	database.InitDB()
	db := database.Database()

	doctors := doctorRepo.NewMongoDoctorRepo(db)
	appointments := appointmentRepo.NewMongoAppointmentRepo(db)
	availability := availabilityRepo.NewMongoAvailabilityRepo(db)
	if err := doctors.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: doctor indexes", zap.Error(err))
	}
	if err := appointments.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: appointment indexes", zap.Error(err))
	}
	if err := availability.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: availability indexes", zap.Error(err))
	}

	return stores{
		doctors:      doctors,
		appointments: appointments,
		availability: availability,
		checks: map[string]utils.HealthCheck{
			"mongo": func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) },
		},
	}
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	st := openStores(ctx, cfg, logger)

	if cfg.SeedDoctors {
		n, err := doctorRepo.Seed(ctx, st.doctors, doctorRepo.DefaultDoctors())
		if err != nil {
			logger.Fatal("main: failed to seed doctors", zap.Error(err))
		}
		logger.Info("Seeded doctors", zap.Int("inserted", n))
	}

	doctors := st.doctors
	if cfg.CacheEnabled {
		if err := utils.InitCache(); err != nil {
			logger.Warn("Doctor cache disabled", zap.Error(err))
		} else {
			doctors = doctorRepo.NewCachedDoctorRepo(st.doctors, utils.GetCacheClient(), cfg.DoctorCacheTTL, logger)
			st.checks["redis"] = utils.RedisHealthCheck(utils.GetCacheClient())
		}
	}

	// reminders.
	var (
		reminders   booking.ReminderScheduler
		worker      *cron.ReminderWorker
		asynqClient *asynq.Client
	)
	if cfg.RemindersEnabled {
		redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
		asynqClient = asynq.NewClient(redisOpt)
		reminders = tasks.NewAsynqReminderScheduler(asynqClient, asynq.NewInspector(redisOpt), cfg.ReminderLead, logger)
		worker = cron.NewReminderWorker(cfg, st.appointments, logger)
		worker.Start()
	}

	// services.
	directoryService := doctor.NewDefaultDirectoryService(doctors, logger)
	bookingService := &booking.DefaultBookingService{
		Doctors:      doctors,
		Appointments: st.appointments,
		Availability: st.availability,
		Reminders:    reminders,
		Window: booking.SlotWindow{
			StartHour:       cfg.SlotStartHour,
			EndHour:         cfg.SlotEndHour,
			IntervalMinutes: cfg.SlotIntervalMinutes,
		},
		VideoDiscount: cfg.VideoDiscount,
		Location:      cfg.Location(),
		Logger:        logger,
	}

	utils.StartHealthMonitor(ctx, 30*time.Second, st.checks)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewDoctorHandler(directoryService),
		handlers.NewBookingHandler(bookingService),
		middleware.PatientIdentity(cfg.JWTSecret, cfg.AuthRequired),
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if asynqClient != nil {
		_ = asynqClient.Close()
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
