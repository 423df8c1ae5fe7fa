package config

import (
	"fmt"
	"os"
	"time"

	"github.com/stock-ahora/etl-mermas/internal/utils"
)

// Load builds a Config from environment variables. It is the default path;
// LoadSecretManager takes over when APP_SECRET_ID is set.
func Load() (*Config, error) {
	port, err := utils.ConverToint(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("DB_PORT: %w", err)
	}

	cfg := &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getEnv("DB_NAME", "gestion"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		S3: S3Config{
			Region: getEnv("AWS_REGION", "us-east-2"),
			Bucket: os.Getenv("S3_BUCKET"),
		},
		LogMode: getEnv("LOG_MODE", "dev"),
	}

	if host := os.Getenv("MQ_HOST"); host != "" {
		mqPort, err := utils.ConverToint(getEnv("MQ_PORT", "5671"))
		if err != nil {
			return nil, fmt.Errorf("MQ_PORT: %w", err)
		}
		cfg.MQ = &MQConfig{
			Host:     host,
			Port:     mqPort,
			User:     os.Getenv("MQ_USER"),
			Password: os.Getenv("MQ_PASSWORD"),
			VHost:    os.Getenv("MQ_VHOST"),
		}
	}

	if err := applyTimeout(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyTimeout lee ETL_TIMEOUT (ej: "5m") como límite de la corrida completa
func applyTimeout(cfg *Config) error {
	raw := os.Getenv("ETL_TIMEOUT")
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("ETL_TIMEOUT: %w", err)
	}
	cfg.Timeout = d
	return nil
}
