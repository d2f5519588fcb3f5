package models

import "time"

type User struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Username       string `gorm:"uniqueIndex;size:50;not null"`
	PasswordDigest string `gorm:"column:password_digest;not null"`
}
