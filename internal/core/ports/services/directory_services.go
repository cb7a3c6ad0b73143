package services

import (
	"context"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
	"github.com/wareflow/wareflow_backend/internal/dto"
)

// CustomerSvcFacade exposes customer directory operations.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

// SupplierSvcFacade exposes supplier directory operations.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// WarehouseSvcFacade exposes warehouse directory operations.
type WarehouseSvcFacade interface {
	CreateWarehouse(ctx context.Context, req dto.CreateWarehouseRequest) (*domain.Warehouse, error)
	GetWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context, limit int, offset int) ([]domain.Warehouse, error)
	DeleteWarehouse(ctx context.Context, warehouseID string) error
}
