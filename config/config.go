package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	MongoURI string `mapstructure:"MONGO_URI"`
	MongoDB  string `mapstructure:"MONGO_DB"`

	// Scraper configuration.
	ScrapeBaseURL       string `mapstructure:"SCRAPE_BASE_URL"`
	ScrapeAreas         string `mapstructure:"SCRAPE_AREAS"`
	ScrapeDays          int    `mapstructure:"SCRAPE_DAYS"`
	ScrapeTimeoutSecs   int    `mapstructure:"SCRAPE_TIMEOUT_SECONDS"`
	ScrapeRatePerSecond int    `mapstructure:"SCRAPE_RATE_PER_SECOND"`

	// Background worker configuration.
	ScrapeWorkerEnabled   bool `mapstructure:"SCRAPE_WORKER_ENABLED"`
	ScrapeIntervalMinutes int  `mapstructure:"SCRAPE_INTERVAL_MINUTES"`

	// Redis configuration (asynq task queue).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "studyrooms")
	viper.SetDefault("SCRAPE_BASE_URL", "https://bookings.lib.uwaterloo.ca/sbs")
	// Area 2: DC group study, area 8: DP group study, area 7: DC single study.
	// The Cambridge campus is omitted.
	viper.SetDefault("SCRAPE_AREAS", "2,8,7")
	viper.SetDefault("SCRAPE_DAYS", 7)
	viper.SetDefault("SCRAPE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SCRAPE_RATE_PER_SECOND", 2)
	viper.SetDefault("SCRAPE_WORKER_ENABLED", false)
	viper.SetDefault("SCRAPE_INTERVAL_MINUTES", 60)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_QUEUE_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Areas parses the configured comma-separated area list.
func Areas() []int {
	parts := strings.Split(AppConfig.ScrapeAreas, ",")
	areas := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			log.Fatalf("Invalid area id %q in SCRAPE_AREAS: %v", p, err)
		}
		areas = append(areas, id)
	}
	return areas
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
