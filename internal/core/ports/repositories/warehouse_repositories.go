package repositories

import (
	"context"
	"time"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
)

// WarehouseRepository defines persistence operations for warehouses.
type WarehouseRepository interface {
	SaveWarehouse(ctx context.Context, warehouse domain.Warehouse) error
	FindWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context, limit int, offset int) ([]domain.Warehouse, error)
	MarkWarehouseDeleted(ctx context.Context, warehouseID string, deletedAt time.Time) error
}
