// One-shot scrape run, intended for cron invocation. Exits non-zero
// if the batch cannot be persisted; scraping-stage failures only skip
// their (date, area) pair.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"studyrooms/config"
	"studyrooms/database"
	roomRepo "studyrooms/database/repository/room"
	"studyrooms/scraper"
	"studyrooms/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := database.Connect(); err != nil {
		logger.Sugar().Fatalf("scrape: failed to connect to MongoDB: %v", err)
	}

	// A cancelled run must persist nothing, so the signal context is
	// threaded all the way through the runner.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := scraper.NewFetcher(
		config.AppConfig.ScrapeBaseURL,
		time.Duration(config.AppConfig.ScrapeTimeoutSecs)*time.Second,
		config.AppConfig.ScrapeRatePerSecond,
	)
	runner := &scraper.Runner{
		Fetcher: fetcher,
		Sink:    roomRepo.NewMongoRoomRepo(),
		Areas:   config.Areas(),
		Days:    config.AppConfig.ScrapeDays,
		Logger:  logger,
	}

	if err := runner.Run(ctx); err != nil {
		logger.Sugar().Fatalf("scrape: run failed: %v", err)
	}
}
