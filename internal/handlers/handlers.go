package handlers

import "os-tracker/internal/database"

// Handlers bundles the stores every route handler needs. Storage handles are
// passed in explicitly instead of living in package state.
type Handlers struct {
	Users  *database.CredentialStore
	Orders *database.OrderRepository
}

func New(users *database.CredentialStore, orders *database.OrderRepository) *Handlers {
	return &Handlers{Users: users, Orders: orders}
}
