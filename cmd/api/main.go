package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/carelink/carelink-api/internal/config"
	appointmentHandler "github.com/carelink/carelink-api/internal/handler/appointment"
	authHandler "github.com/carelink/carelink-api/internal/handler/auth"
	directoryHandler "github.com/carelink/carelink-api/internal/handler/directory"
	healthHandler "github.com/carelink/carelink-api/internal/handler/health"
	inventoryHandler "github.com/carelink/carelink-api/internal/handler/inventory"
	messageHandler "github.com/carelink/carelink-api/internal/handler/message"
	orderHandler "github.com/carelink/carelink-api/internal/handler/order"
	prescriptionHandler "github.com/carelink/carelink-api/internal/handler/prescription"
	reminderHandler "github.com/carelink/carelink-api/internal/handler/reminder"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/repository/memory"
	"github.com/carelink/carelink-api/internal/router"
	"github.com/carelink/carelink-api/internal/seed"
	appointmentService "github.com/carelink/carelink-api/internal/service/appointment"
	authService "github.com/carelink/carelink-api/internal/service/auth"
	directoryService "github.com/carelink/carelink-api/internal/service/directory"
	inventoryService "github.com/carelink/carelink-api/internal/service/inventory"
	messageService "github.com/carelink/carelink-api/internal/service/message"
	orderService "github.com/carelink/carelink-api/internal/service/order"
	prescriptionService "github.com/carelink/carelink-api/internal/service/prescription"
	reminderService "github.com/carelink/carelink-api/internal/service/reminder"
	"github.com/carelink/carelink-api/internal/storage"
	"github.com/carelink/carelink-api/pkg/auth"
	"github.com/carelink/carelink-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level: logger.ParseLevel(cfg.Log.Level),
	})

	// Storage + store: seed first, then let persisted files win on collision
	dir := storage.New(cfg.Storage.Dir)
	store := memory.NewStore(dir, appLogger)

	now := time.Now()
	if err := seed.Apply(store, now); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo data")
	}
	store.LoadPersisted()

	// Repositories
	userRepo := memory.NewUserRepository(store)
	doctorRepo := memory.NewDoctorRepository(store)
	patientRepo := memory.NewPatientRepository(store)
	pharmacyRepo := memory.NewPharmacyRepository(store)
	appointmentRepo := memory.NewAppointmentRepository(store)
	prescriptionRepo := memory.NewPrescriptionRepository(store)
	orderRepo := memory.NewOrderRepository(store)
	messageRepo := memory.NewMessageRepository(store)
	reminderRepo := memory.NewReminderRepository(store)
	inventoryRepo := memory.NewInventoryRepository(store)

	// Demo appointments drift into the past between runs; reminders belong to
	// a single day. Both are normalized before the listener starts.
	shifted := seed.RefreshDemoAppointments(appointmentRepo, now)
	reset := seed.ResetReminders(reminderRepo, now)
	appLogger.WithFields(map[string]interface{}{
		"appointments_shifted": shifted,
		"reminders_reset":      reset,
	}).Info("demo data refreshed")

	// Services
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	authSvc := authService.NewService(userRepo, doctorRepo, patientRepo, pharmacyRepo, tokens)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, patientRepo, userRepo)
	prescriptionSvc := prescriptionService.NewService(prescriptionRepo, doctorRepo, patientRepo, userRepo)
	orderSvc := orderService.NewService(orderRepo, prescriptionRepo, pharmacyRepo, doctorRepo, patientRepo, userRepo)
	messageSvc := messageService.NewService(messageRepo, userRepo)
	reminderSvc := reminderService.NewService(reminderRepo, prescriptionRepo, patientRepo)
	inventorySvc := inventoryService.NewService(inventoryRepo, pharmacyRepo)
	directorySvc := directoryService.NewService(doctorRepo, patientRepo, pharmacyRepo, userRepo, appointmentRepo)

	// Middleware + handlers
	authMiddleware := middleware.NewAuthMiddleware(tokens)
	healthH := healthHandler.NewHandler(dir)
	authH := authHandler.NewHandler(authSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	prescriptionH := prescriptionHandler.NewHandler(prescriptionSvc)
	orderH := orderHandler.NewHandler(orderSvc)
	messageH := messageHandler.NewHandler(messageSvc)
	reminderH := reminderHandler.NewHandler(reminderSvc)
	inventoryH := inventoryHandler.NewHandler(inventorySvc)
	directoryH := directoryHandler.NewHandler(directorySvc)

	r := router.NewRouter(
		authMiddleware,
		healthH,
		authH,
		directoryH,
		appointmentH,
		prescriptionH,
		orderH,
		messageH,
		reminderH,
		inventoryH,
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			CORSOrigins:   cfg.CORS.Origins,
			MetricsPrefix: "carelink",
		},
	)
	r.Setup()

	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
