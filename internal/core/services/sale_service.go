package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wareflow/wareflow_backend/internal/apperrors"
	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
	"github.com/wareflow/wareflow_backend/internal/middleware"
)

var (
	ErrTotalNotPositive = fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	ErrPaidOverTotal    = fmt.Errorf("%w: paid amount cannot exceed total amount", apperrors.ErrValidation)
	ErrPaidNegative     = fmt.Errorf("%w: paid amount cannot be negative", apperrors.ErrValidation)
)

type saleService struct {
	saleRepo portsrepo.SaleRepository
}

// NewSaleService creates a new sales ledger service.
func NewSaleService(saleRepo portsrepo.SaleRepository) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale records a sales invoice. The outstanding balance starts at
// total minus the amount collected up front, keeping
// balance + paidAmount == totalAmount from the first write.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
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
	sale := domain.Sale{
		SaleID:      uuid.NewString(),
		InvoiceNo:   req.InvoiceNo,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		Balance:     req.TotalAmount.Sub(req.PaidAmount),
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if req.CustomerID != nil {
		sale.CustomerID = *req.CustomerID
	}
	if req.WarehousesID != nil {
		sale.WarehouseID = *req.WarehousesID
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		return nil, err
	}

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID), slog.String("invoice_no", sale.InvoiceNo))
	return &sale, nil
}

func (s *saleService) GetSaleByInvoiceNo(ctx context.Context, invoiceNo string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByInvoiceNo(ctx, invoiceNo)
}

func (s *saleService) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	return s.saleRepo.ListSales(ctx, limit, offset)
}
