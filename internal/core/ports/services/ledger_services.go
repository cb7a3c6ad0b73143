package services

import (
	"context"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
	"github.com/wareflow/wareflow_backend/internal/dto"
)

// SaleSvcFacade exposes sales ledger operations.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)
	GetSaleByInvoiceNo(ctx context.Context, invoiceNo string) (*domain.Sale, error)
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
}

// PurchaseSvcFacade exposes purchase ledger operations.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	GetPurchaseByReferenceNo(ctx context.Context, referenceNo string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error)
}
