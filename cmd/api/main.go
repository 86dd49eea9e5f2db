package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/teeseele/journey-service/docs"
	"github.com/teeseele/journey-service/internal/config"
	"github.com/teeseele/journey-service/internal/handler"
	"github.com/teeseele/journey-service/internal/logger"
	"github.com/teeseele/journey-service/internal/metrics"
	"github.com/teeseele/journey-service/internal/repository"
	"github.com/teeseele/journey-service/internal/repository/memory"
	"github.com/teeseele/journey-service/internal/repository/mongo"
	"github.com/teeseele/journey-service/internal/service"
)

// @title Tee & Seele API
// @version 1.0
// @description Backend for the gamified wellness experience
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize the document store
	var repo repository.WellnessRepository
	if cfg.Mongo.URI == "" {
		log.Warn("MONGO_URI not set, using in-memory store")
		repo = memory.NewRepository()
	} else {
		mongoClient, err := mongo.NewClient(ctx, &cfg.Mongo, log)
		if err != nil {
			log.Fatal("Failed to create MongoDB client", zap.Error(err))
		}

		mongoRepo := mongo.NewRepository(mongoClient, log)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal("Failed to ensure indexes", zap.Error(err))
		}
		repo = mongoRepo
	}
	defer func() {
		if err := repo.Close(ctx); err != nil {
			log.Error("Failed to close store", zap.Error(err))
		}
	}()

	// Initialize journey service
	journeyService := service.NewJourneyService(repo, log)

	// Initialize metrics and handler
	m := metrics.New("teeseele")
	h := handler.NewHandler(journeyService, m, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	server := &http.Server{
		Addr:    addr,
		Handler: h,
	}

	go func() {
		log.Info("API server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down API server gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down API server", zap.Error(err))
	}
}
