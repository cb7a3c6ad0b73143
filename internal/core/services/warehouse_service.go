package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
)

type warehouseService struct {
	warehouseRepo portsrepo.WarehouseRepository
}

// NewWarehouseService creates a new warehouse directory service.
func NewWarehouseService(warehouseRepo portsrepo.WarehouseRepository) portssvc.WarehouseSvcFacade {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

var _ portssvc.WarehouseSvcFacade = (*warehouseService)(nil)

func (s *warehouseService) CreateWarehouse(ctx context.Context, req dto.CreateWarehouseRequest) (*domain.Warehouse, error) {
	now := time.Now().UTC()
	warehouse := domain.Warehouse{
		WarehouseID: uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.warehouseRepo.SaveWarehouse(ctx, warehouse); err != nil {
		return nil, fmt.Errorf("failed to save warehouse: %w", err)
	}
	return &warehouse, nil
}

func (s *warehouseService) GetWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error) {
	return s.warehouseRepo.FindWarehouseByID(ctx, warehouseID)
}

func (s *warehouseService) ListWarehouses(ctx context.Context, limit int, offset int) ([]domain.Warehouse, error) {
	return s.warehouseRepo.ListWarehouses(ctx, limit, offset)
}

// DeleteWarehouse soft-deletes a warehouse; sales and purchases keep their
// reference but the warehouse disappears from lookups.
func (s *warehouseService) DeleteWarehouse(ctx context.Context, warehouseID string) error {
	if _, err := s.warehouseRepo.FindWarehouseByID(ctx, warehouseID); err != nil {
		return err
	}
	if err := s.warehouseRepo.MarkWarehouseDeleted(ctx, warehouseID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to delete warehouse %s: %w", warehouseID, err)
	}
	return nil
}
