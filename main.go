// File: tripwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripwise/config"
	"tripwise/database"
	conversationRepo "tripwise/database/repository/conversation"
	"tripwise/handlers"
	"tripwise/middleware"
	"tripwise/routes"
	ai "tripwise/services/intelligence"
	"tripwise/services/planner"
	"tripwise/services/travel"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	convRepo := conversationRepo.NewMongoConversationRepo()

	// Services.
	geminiClient, err := ai.NewGeminiClient(context.Background(),
		config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	travelClient := travel.NewClient(
		config.AppConfig.RapidAPIHost,
		config.AppConfig.RapidAPIKey,
		utils.GetCacheClient(),
	)

	extractor := planner.NewExtractor(config.AppConfig.ExtractionMode, logger)
	plannerSvc := planner.NewDefaultPlannerService(
		convRepo,
		geminiClient,
		travelClient,
		extractor,
		config.AppConfig.CollectOrigin,
		logger,
	)

	// Handlers.
	handlerBundle := &routes.HandlerBundle{
		Planner: handlers.NewPlannerHandler(plannerSvc),
		Travel:  handlers.NewTravelHandler(travelClient),
	}

	routes.RegisterRoutes(router, handlerBundle)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
