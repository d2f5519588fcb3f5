package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"os-tracker/internal/models"
)

var ErrNotFound = errors.New("service order not found")

// OrderFields carries the user-editable fields of a service order.
type OrderFields struct {
	Client      string
	Technician  string
	Description string
	Value       string
	Status      string
}

func (f *OrderFields) trim() {
	f.Client = strings.TrimSpace(f.Client)
	f.Technician = strings.TrimSpace(f.Technician)
	f.Description = strings.TrimSpace(f.Description)
	f.Value = strings.TrimSpace(f.Value)
}

// OrderRepository persists service orders scoped by owning user. Every query
// filters by owner id, so records of other users are invisible even with a
// guessed id.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListForOwner returns the owner's orders, most recent first.
func (r *OrderRepository) ListForOwner(ownerID uint) ([]models.ServiceOrder, error) {
	var orders []models.ServiceOrder
	err := r.db.Where("user_id = ?", ownerID).Order("id desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns the order only when it exists and belongs to ownerID;
// otherwise (nil, nil), hiding whether the id exists at all.
func (r *OrderRepository) Get(id, ownerID uint) (*models.ServiceOrder, error) {
	var order models.ServiceOrder
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create stores a new order for ownerID. Client, technician, description and
// value must be non-empty after trimming; status is accepted as-is.
func (r *OrderRepository) Create(ownerID uint, fields OrderFields) (*models.ServiceOrder, error) {
	fields.trim()
	if fields.Client == "" || fields.Technician == "" || fields.Description == "" || fields.Value == "" {
		return nil, ErrEmptyField
	}

	order := models.ServiceOrder{
		UserID:      ownerID,
		Client:      fields.Client,
		Technician:  fields.Technician,
		Description: fields.Description,
		Value:       fields.Value,
		Status:      fields.Status,
	}
	if err := r.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Update overwrites all fields of the order. Fails with ErrNotFound when the
// order does not exist or belongs to another owner.
func (r *OrderRepository) Update(id, ownerID uint, fields OrderFields) error {
	order, err := r.Get(id, ownerID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNotFound
	}

	fields.trim()
	order.Client = fields.Client
	order.Technician = fields.Technician
	order.Description = fields.Description
	order.Value = fields.Value
	order.Status = fields.Status
	return r.db.Save(order).Error
}

// Delete removes the order when it exists and is owned by ownerID. Deleting
// a nonexistent or non-owned id is a silent no-op.
func (r *OrderRepository) Delete(id, ownerID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.ServiceOrder{}).Error
}
