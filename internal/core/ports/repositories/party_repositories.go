package repositories

import (
	"context"
	"time"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
)

// CustomerRepository defines persistence operations for the customer directory.
// Find and List exclude soft-deleted rows.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	MarkCustomerDeleted(ctx context.Context, customerID string, deletedAt time.Time) error
}

// SupplierRepository defines persistence operations for the supplier directory.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
	MarkSupplierDeleted(ctx context.Context, supplierID string, deletedAt time.Time) error
}
