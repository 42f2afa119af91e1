package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/medassist/medassist-api/internal/config"
	articleHandler "github.com/medassist/medassist-api/internal/handler/article"
	chatHandler "github.com/medassist/medassist-api/internal/handler/chat"
	doctorHandler "github.com/medassist/medassist-api/internal/handler/doctor"
	hospitalHandler "github.com/medassist/medassist-api/internal/handler/hospital"
	intentHandler "github.com/medassist/medassist-api/internal/handler/intent"
	navigationHandler "github.com/medassist/medassist-api/internal/handler/navigation"
	searchHandler "github.com/medassist/medassist-api/internal/handler/search"
	specialtyHandler "github.com/medassist/medassist-api/internal/handler/specialty"
	toolHandler "github.com/medassist/medassist-api/internal/handler/tool"
	"github.com/medassist/medassist-api/internal/middleware"
	"github.com/medassist/medassist-api/internal/repository/memory"
	"github.com/medassist/medassist-api/internal/repository/ossstore"
	"github.com/medassist/medassist-api/internal/router"
	appointmentService "github.com/medassist/medassist-api/internal/service/appointment"
	articleService "github.com/medassist/medassist-api/internal/service/article"
	chatService "github.com/medassist/medassist-api/internal/service/chat"
	doctorService "github.com/medassist/medassist-api/internal/service/doctor"
	hospitalService "github.com/medassist/medassist-api/internal/service/hospital"
	intentService "github.com/medassist/medassist-api/internal/service/intent"
	navigationService "github.com/medassist/medassist-api/internal/service/navigation"
	searchService "github.com/medassist/medassist-api/internal/service/search"
	toolService "github.com/medassist/medassist-api/internal/service/tool"
	"github.com/medassist/medassist-api/pkg/llm"
	"github.com/medassist/medassist-api/pkg/logger"
	"github.com/medassist/medassist-api/pkg/metrics"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
	})
	appMetrics := metrics.NewMetrics("medassist")

	// Reference data repositories
	hospitalRepo := memory.NewHospitalRepository(memory.SeedHospitals())
	doctorRepo := memory.NewDoctorRepository(memory.SeedDoctors())
	specialtyRepo := memory.NewSpecialtyRepository(memory.SeedSpecialties())

	// Object storage for articles and uploads
	store, err := ossstore.New(cfg.OSS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	llmClient := llm.NewHTTPClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})

	// Services
	hospitalSvc := hospitalService.NewService(hospitalRepo, specialtyRepo)
	doctorSvc := doctorService.NewService(doctorRepo, hospitalRepo, specialtyRepo)
	appointmentSvc := appointmentService.NewService(doctorRepo, hospitalRepo)
	navigationSvc := navigationService.NewService(hospitalRepo)
	searchSvc := searchService.NewService(cfg.Search, appLogger)
	intentSvc := intentService.NewService(cfg.Intent, llmClient, appLogger, appMetrics)
	toolSvc := toolService.NewService(intentSvc, hospitalSvc, doctorSvc, appointmentSvc, navigationSvc, searchSvc, appLogger, appMetrics)
	chatSvc := chatService.NewService(toolSvc, llmClient, appLogger, appMetrics)
	articleSvc := articleService.NewService(cfg.Articles, store, store, appLogger, appMetrics)

	// Router and handlers
	r := router.NewRouter(
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			RequestTimeout: cfg.Server.RequestTimeout,
			CORSConfig:     middleware.DefaultCORSConfig(),
			MetricsPrefix:  "medassist_http",
		},
		hospitalHandler.NewHandler(hospitalSvc),
		doctorHandler.NewHandler(doctorSvc, appointmentSvc),
		specialtyHandler.NewHandler(specialtyRepo),
		navigationHandler.NewHandler(navigationSvc),
		searchHandler.NewHandler(searchSvc),
		intentHandler.NewHandler(intentSvc),
		toolHandler.NewHandler(toolSvc),
		chatHandler.NewHandler(chatSvc, appLogger),
		articleHandler.NewHandler(articleSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info("starting server", "port", cfg.Server.Port)
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
