package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-api/internal/domain/entity"
)

// CustomerRepository defines the storage operations for customers
type CustomerRepository interface {
	// Create saves a new customer and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the email is already taken
	// - DatabaseError: For any other storage failure
	Create(ctx context.Context, customer *entity.Customer) error

	// Update persists every field of an existing customer
	//
	// Possible errors:
	// - ErrCustomerNotFound: If the customer doesn't exist
	// - ErrDuplicateEmail: If the new email is already taken
	Update(ctx context.Context, customer *entity.Customer) error

	// GetByID retrieves a customer by ID
	//
	// Possible errors:
	// - ErrCustomerNotFound: If the customer doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Customer, error)

	// GetByEmail retrieves a customer by email
	//
	// Possible errors:
	// - ErrCustomerNotFound: If the customer doesn't exist
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// List returns every customer ordered by ID
	List(ctx context.Context) ([]*entity.Customer, error)

	// Delete removes a customer by ID
	//
	// Possible errors:
	// - ErrCustomerNotFound: If the customer doesn't exist
	Delete(ctx context.Context, id uint64) error
}
