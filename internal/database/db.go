package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"os-tracker/internal/models"
)

// Open opens (or creates) the SQLite database at path and applies the schema.
// A missing file is bootstrapped on first open; AutoMigrate is a no-op when
// the schema is already in place.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.ServiceOrder{}); err != nil {
		return nil, err
	}

	logrus.WithField("path", path).Info("database ready")
	return db, nil
}
