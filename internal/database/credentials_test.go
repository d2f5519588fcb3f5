package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-tracker/internal/models"
)

func TestCredentialStore_RegisterAndAuthenticate(t *testing.T) {
	store := NewCredentialStore(openTestDB(t, "cred_roundtrip"))

	created, err := store.Register("alice", "secret123")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, "secret123", created.PasswordDigest)

	user, err := store.Authenticate("alice", "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)

	wrong, err := store.Authenticate("alice", "secret124")
	require.NoError(t, err)
	assert.Nil(t, wrong)

	unknown, err := store.Authenticate("bob", "secret123")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestCredentialStore_TrimsUsername(t *testing.T) {
	store := NewCredentialStore(openTestDB(t, "cred_trim"))

	_, err := store.Register("  alice  ", "secret123")
	require.NoError(t, err)

	user, err := store.Authenticate("alice", "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestCredentialStore_DuplicateUsername(t *testing.T) {
	db := openTestDB(t, "cred_dup")
	store := NewCredentialStore(db)

	_, err := store.Register("alice", "secret123")
	require.NoError(t, err)

	_, err = store.Register("alice", "another")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCredentialStore_EmptyFields(t *testing.T) {
	db := openTestDB(t, "cred_empty")
	store := NewCredentialStore(db)

	_, err := store.Register("", "secret123")
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = store.Register("   ", "secret123")
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = store.Register("alice", "")
	assert.ErrorIs(t, err, ErrEmptyField)

	// failed validations must not write anything
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCredentialStore_ByID(t *testing.T) {
	store := NewCredentialStore(openTestDB(t, "cred_byid"))

	created, err := store.Register("alice", "secret123")
	require.NoError(t, err)

	user, err := store.ByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	gone, err := store.ByID(created.ID + 100)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
