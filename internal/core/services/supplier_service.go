package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
	"github.com/wareflow/wareflow_backend/internal/middleware"
)

type supplierService struct {
	supplierRepo portsrepo.SupplierRepository
}

// NewSupplierService creates a new supplier directory service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepository) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *supplierService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx, limit, offset)
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, supplierID); err != nil {
		return err
	}
	if err := s.supplierRepo.MarkSupplierDeleted(ctx, supplierID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Supplier soft-deleted", slog.String("supplier_id", supplierID))
	return nil
}
