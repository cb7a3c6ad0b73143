package repositories

import (
	"context"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
)

// SaleRepository defines persistence operations for the sales ledger.
// Sales are looked up by invoice number, the business-level reference.
type SaleRepository interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	FindSaleByInvoiceNo(ctx context.Context, invoiceNo string) (*domain.Sale, error)
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
}

// PurchaseRepository defines persistence operations for the purchase ledger,
// keyed by supplier-facing reference number.
type PurchaseRepository interface {
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
	FindPurchaseByReferenceNo(ctx context.Context, referenceNo string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error)
}
