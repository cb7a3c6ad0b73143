package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
	"github.com/wareflow/wareflow_backend/internal/middleware"
)

type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepository
}

// NewPurchaseService creates a new purchase ledger service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepository) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: purchaseRepo}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrTotalNotPositive
	}
	if req.PaidAmount.IsNegative() {
		return nil, ErrPaidNegative
	}
	if req.PaidAmount.GreaterThan(req.TotalAmount) {
		return nil, ErrPaidOverTotal
	}

	now := time.Now().UTC()
	purchase := domain.Purchase{
		PurchaseID:  uuid.NewString(),
		ReferenceNo: req.ReferenceNo,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		Balance:     req.TotalAmount.Sub(req.PaidAmount),
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if req.SupplierID != nil {
		purchase.SupplierID = *req.SupplierID
	}
	if req.WarehousesID != nil {
		purchase.WarehouseID = *req.WarehousesID
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	logger.Info("Purchase recorded", slog.String("purchase_id", purchase.PurchaseID), slog.String("reference_no", purchase.ReferenceNo))
	return &purchase, nil
}

func (s *purchaseService) GetPurchaseByReferenceNo(ctx context.Context, referenceNo string) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByReferenceNo(ctx, referenceNo)
}

func (s *purchaseService) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	return s.purchaseRepo.ListPurchases(ctx, limit, offset)
}
