package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "env", cfg.AppEnv)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	adminRepo := postgres.NewAdminRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	visitorRepo := postgres.NewVisitorRepository(dbPool)

	// 5. Setup Token Service
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryHours)
	if err != nil {
		logger.Log.Error("Failed to initialize token service", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	validate := validator.New()
	adminUC := usecase.NewAdminUsecase(adminRepo, recruiterRepo, userRepo, jobRepo, visitorRepo, tokens)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo, jobRepo, tokens)
	userUC := usecase.NewUserUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	visitorUC := usecase.NewVisitorUsecase(visitorRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AdminUC:     adminUC,
		RecruiterUC: recruiterUC,
		UserUC:      userUC,
		JobUC:       jobUC,
		VisitorUC:   visitorUC,
		Tokens:      tokens,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
