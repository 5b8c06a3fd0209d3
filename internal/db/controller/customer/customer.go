// Package customer provides CRUD operations for customer accounts.
package customer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GeovaneMT/LavaCar/internal/ability"
	"github.com/GeovaneMT/LavaCar/internal/db/models"
)

var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrEmailExists is returned when registering a customer with an email
	// that is already taken.
	ErrEmailExists = errors.New("customer with email already exists")
)

// Store persists customers.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new customer. It fails with ErrEmailExists when the
// email is already registered.
func (s *Store) Create(ctx context.Context, customer *models.Customer) error {
	var existing models.Customer

	result := s.db.WithContext(ctx).First(&existing, "email = ?", customer.Email)
	if result.Error == nil {
		return ErrEmailExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	return s.db.WithContext(ctx).Create(customer).Error
}

// FindByID retrieves a customer by id.
func (s *Store) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer

	result := s.db.WithContext(ctx).First(&customer, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, result.Error
	}

	return &customer, nil
}

// FindByEmail retrieves a customer by email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer

	result := s.db.WithContext(ctx).First(&customer, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, result.Error
	}

	return &customer, nil
}

// FindActor resolves a customer as an acting principal. The boolean is
// false when the id is unknown, without an error.
func (s *Store) FindActor(ctx context.Context, id string) (ability.Actor, bool, error) {
	customer, err := s.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return ability.Actor{}, false, nil
		}
		return ability.Actor{}, false, err
	}

	return ability.Actor{ID: customer.ID, Role: customer.Role}, true, nil
}

// List retrieves all customers ordered by creation time.
func (s *Store) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer

	result := s.db.WithContext(ctx).Order("created_at").Find(&customers)
	if result.Error != nil {
		return nil, result.Error
	}

	return customers, nil
}

// Save persists changes to an existing customer.
func (s *Store) Save(ctx context.Context, customer *models.Customer) error {
	return s.db.WithContext(ctx).Save(customer).Error
}

// Delete removes a customer.
func (s *Store) Delete(ctx context.Context, customer *models.Customer) error {
	return s.db.WithContext(ctx).Delete(customer).Error
}
