package config

import (
	"os"
)

type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
}

type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	Storage     StorageConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	// Image storage config
	cfg.Storage.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.Storage.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.Storage.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.Storage.Bucket = os.Getenv("S3_BUCKET")
	cfg.Storage.Region = os.Getenv("S3_REGION")
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "auto"
	}

	return cfg
}
