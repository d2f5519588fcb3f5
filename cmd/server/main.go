package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"os-tracker/internal/config"
	"os-tracker/internal/database"
	"os-tracker/internal/server"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logrus.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
