package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-tourism-backend/internal/config"
	"medical-tourism-backend/internal/database"
	"medical-tourism-backend/internal/handler"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/internal/service"
	"medical-tourism-backend/pkg/utils"

	"github.com/rs/zerolog"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Build the logger
	logger := newLogger(cfg)
	logger.Info().Msg("Configuration loaded")

	// 3. Token manager with injected secret and expiry
	tokens := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// 4. Database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database schema")
	}
	logger.Info().Msg("Connected to database")

	// 5. Repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	treatmentRepo := repository.NewTreatmentRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	hospitalTreatmentRepo := repository.NewHospitalTreatmentRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 6. Services
	authService := service.NewAuthService(userRepo, auditRepo, tokens)
	userService := service.NewUserService(userRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, auditRepo)
	treatmentService := service.NewTreatmentService(treatmentRepo, auditRepo)
	doctorService := service.NewDoctorService(doctorRepo, hospitalRepo, treatmentRepo, auditRepo)
	hospitalTreatmentService := service.NewHospitalTreatmentService(hospitalTreatmentRepo, hospitalRepo, treatmentRepo, auditRepo)
	bookingService := service.NewBookingService(bookingRepo, hospitalTreatmentRepo, auditRepo)
	statsService := service.NewStatsService(userRepo, hospitalRepo, treatmentRepo, bookingRepo)

	// 7. Handlers and router
	handlers := &handler.Handlers{
		Auth:              handler.NewAuthHandler(authService),
		User:              handler.NewUserHandler(userService),
		Hospital:          handler.NewHospitalHandler(hospitalService),
		Treatment:         handler.NewTreatmentHandler(treatmentService),
		Doctor:            handler.NewDoctorHandler(doctorService),
		HospitalTreatment: handler.NewHospitalTreatmentHandler(hospitalTreatmentService),
		Booking:           handler.NewBookingHandler(bookingService),
		Admin:             handler.NewAdminHandler(statsService),
	}
	router := handler.NewRouter(cfg, logger, tokens, handlers)

	// 8. Serve with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server exited")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Log.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
