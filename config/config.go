// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings.
type Config struct {
	Port           string
	GinMode        string
	DataDir        string
	DatabasePath   string
	RateLimitRPS   float64
	RateLimitBurst float64
	// ReanalysisMaxAge is how old a stored analysis may be before a new
	// request re-fetches the page instead of serving the stored result.
	ReanalysisMaxAge time.Duration
	// ScheduleSpec is the cron expression for background re-analysis.
	// Empty disables the scheduler.
	ScheduleSpec string
}

// Load reads the configuration from the environment. A .env.development
// file takes precedence over .env for local runs; missing files are fine.
func Load() (*Config, error) {
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}

	cfg := &Config{
		Port:             envOr("PORT", "8082"),
		GinMode:          envOr("GIN_MODE", gin.ReleaseMode),
		DataDir:          envOr("DATA_DIR", "data"),
		RateLimitRPS:     2,
		RateLimitBurst:   5,
		ReanalysisMaxAge: 24 * time.Hour,
		ScheduleSpec:     envOr("REANALYSIS_CRON", "0 3 * * *"),
	}
	cfg.DatabasePath = envOr("DATABASE_PATH", cfg.DataDir+"/pagepulse.db")

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		cfg.RateLimitRPS = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", v)
		}
		cfg.RateLimitBurst = f
	}
	if v := os.Getenv("REANALYSIS_MAX_AGE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid REANALYSIS_MAX_AGE %q", v)
		}
		cfg.ReanalysisMaxAge = d
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
