// File: studyrooms/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyrooms/config"
	"studyrooms/cron"
	"studyrooms/database"
	roomRepo "studyrooms/database/repository/room"
	"studyrooms/handlers"
	"studyrooms/middleware"
	"studyrooms/routes"
	"studyrooms/scraper"
	"studyrooms/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// repositories.
	roomsRepo := roomRepo.NewMongoRoomRepo()

	// Optionally host the periodic scrape worker in-process; a
	// standalone run stays available via cmd/scrape.
	if config.AppConfig.ScrapeWorkerEnabled {
		fetcher := scraper.NewFetcher(
			config.AppConfig.ScrapeBaseURL,
			time.Duration(config.AppConfig.ScrapeTimeoutSecs)*time.Second,
			config.AppConfig.ScrapeRatePerSecond,
		)
		runner := &scraper.Runner{
			Fetcher: fetcher,
			Sink:    roomsRepo,
			Areas:   config.Areas(),
			Days:    config.AppConfig.ScrapeDays,
			Logger:  logger,
		}
		cron.InitScrapeWorker(runner)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet},
	}))

	roomHandler := handlers.NewRoomHandler(roomsRepo, logger)
	routes.RegisterRoutes(router, roomHandler)

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
