package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"miohost/catalog"
	"miohost/config"
	"miohost/cron"
	"miohost/database"
	requestsRepo "miohost/database/repository/requests"
	"miohost/handlers"
	"miohost/middleware"
	"miohost/routes"
	"miohost/services/concierge"
	"miohost/services/notification"
	"miohost/services/preferences"
	"miohost/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	content, err := catalog.New()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid guest content catalog: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reqRepo := requestsRepo.NewMongoRequestRepo()

	// services.
	prefsService := preferences.NewRedisService(utils.GetCacheClient())
	notifier := notification.NewAsynqNotifier()
	conciergeService := concierge.NewManager(
		content,
		time.Duration(config.AppConfig.BotDelayMS)*time.Millisecond,
		config.AppConfig.DefaultRoom,
		logger,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Chat:        handlers.NewChatHandler(conciergeService, reqRepo, prefsService, notifier, logger),
		Preferences: handlers.NewPreferencesHandler(prefsService, logger),
		Catalog:     handlers.NewCatalogHandler(content),
		Desk:        handlers.NewDeskHandler(reqRepo, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the desk notification worker.
	cron.InitDeskWorker()

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
