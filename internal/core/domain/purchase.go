package domain

import "github.com/shopspring/decimal"

// Purchase represents a purchase order in the ledger, mirroring Sale but
// keyed by supplier-facing reference number.
type Purchase struct {
	PurchaseID  string          `json:"purchaseID"`
	ReferenceNo string          `json:"referenceNo"`
	SupplierID  string          `json:"supplierID"`
	WarehouseID string          `json:"warehouseID"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Balance     decimal.Decimal `json:"balance"`
	IsDeleted   bool            `json:"isDeleted"`
	Timestamps
}
