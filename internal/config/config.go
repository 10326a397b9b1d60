package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. The signing secret and database
// handle are passed into each component explicitly rather than read from
// package globals.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string

	AWSRegion      string
	AWSAccessKeyID string
	AWSSecretKey   string
	S3Bucket       string
}

// Load reads configuration from the environment, after loading a local .env
// file if one exists. DATABASE_URL and JWT_SECRET are required; there is no
// fallback signing secret.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           os.Getenv("PORT"),
		AWSRegion:      os.Getenv("AWS_REGION"),
		AWSAccessKeyID: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	return cfg, nil
}
