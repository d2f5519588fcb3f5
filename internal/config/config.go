package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBPath        string
	ServerPort    string
	SessionSecret string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:        os.Getenv("DB_PATH"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "data.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	// the session cookie is only as good as its signing key, so no default
	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}
