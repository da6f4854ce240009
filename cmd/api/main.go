package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ats-backend/config"
	_ "go-ats-backend/docs" // Important for Swagger
	v1 "go-ats-backend/internal/delivery/http/v1"
	"go-ats-backend/internal/repository/postgres"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/database"
	"go-ats-backend/pkg/llm"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/redis"
	"go-ats-backend/pkg/storage"
)

// @title           ATS Backend API
// @version         1.0
// @description     Applicant tracking backend with AI resume parsing.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting ATS backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; the API works without it)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	dashboardRepo := postgres.NewDashboardRepository(dbPool)

	// 6. Setup Resume Pipeline
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	fileStore := storage.NewFileStore(cfg.UploadDir)

	// 7. Setup UseCases
	resumeUC := usecase.NewResumeUsecase(
		llmClient,
		fileStore,
		cfg.ResumeMinTextChars,
		cfg.ResumePromptMaxChars,
		time.Duration(cfg.DocConvertTimeoutSeconds)*time.Second,
	)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	dashboardUC := usecase.NewDashboardUsecase(dashboardRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC:    resumeUC,
		CandidateUC: candidateUC,
		DashboardUC: dashboardUC,
		Config:      cfg,
	})

	// 9. Start Server
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
