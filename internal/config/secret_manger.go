package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/stock-ahora/etl-mermas/internal/config_lib"
)

// LoadSecretManager builds a Config from the JSON application secret.
func LoadSecretManager(ctx context.Context) (*Config, error) {
	secretID := os.Getenv("APP_SECRET_ID")
	if secretID == "" {
		return nil, fmt.Errorf("APP_SECRET_ID no definido")
	}

	region := getEnv("AWS_REGION", "us-east-2")

	sm, err := config_lib.New(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("crear secrets manager: %w", err)
	}

	raw, err := sm.GetSecretString(ctx, secretID, "AWSCURRENT")
	if err != nil {
		return nil, fmt.Errorf("obtener secreto: %w", err)
	}

	var app SecretApp
	if err := json.Unmarshal([]byte(raw), &app); err != nil {
		return nil, fmt.Errorf("parsear secreto JSON: %w", err)
	}

	cfg := &Config{
		DB:      app.ToDBConfig(),
		S3:      app.ToS3Config(),
		LogMode: getEnv("LOG_MODE", "prod"),
	}
	if app.MQ_HOST != "" {
		mq := app.ToMQConfig()
		cfg.MQ = &mq
	}
	if err := applyTimeout(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No se encontró archivo .env: %v", err)
	}
}
