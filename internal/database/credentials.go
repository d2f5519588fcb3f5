package database

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"os-tracker/internal/models"
)

var (
	ErrEmptyField        = errors.New("required field is empty")
	ErrDuplicateUsername = errors.New("username already taken")
)

// CredentialStore persists username/password-digest pairs.
type CredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// Register stores a new user with a bcrypt digest of password. The username
// is trimmed first; empty username or password is rejected before any write,
// as is an exact-match existing username.
func (s *CredentialStore) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyField
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, PasswordDigest: string(digest)}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate looks up username and verifies password against the stored
// digest. Returns (nil, nil) on unknown username or digest mismatch; the two
// cases are indistinguishable to the caller.
func (s *CredentialStore) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)) != nil {
		return nil, nil
	}
	return &user, nil
}

// ByID resolves a user id, typically one carried by a session. Returns
// (nil, nil) when no such user exists.
func (s *CredentialStore) ByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
