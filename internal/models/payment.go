package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalancePayment mirrors the balance_payments table. Exactly one of
// CustomerID/SupplierID is non-nil and at most one of SaleID/PurchaseID;
// the check constraints in the migration enforce the same shape.
type BalancePayment struct {
	PaymentID     string
	CustomerID    *string
	SupplierID    *string
	SaleID        *string // sales.invoice_no
	PurchaseID    *string // purchases.reference_no
	Amount        decimal.Decimal
	PaymentMethod string
	ReceiptNo     string
	Notes         *string
	WarehousesID  *string
	IsDeleted     bool
	CreatedAt     time.Time
}
