package domain

import "github.com/shopspring/decimal"

// Sale represents a sales invoice in the ledger. The outstanding balance
// starts at the invoice total and decreases toward zero as payments are
// applied; PaidAmount grows by the same amounts, so
// Balance + PaidAmount == TotalAmount holds at all times.
type Sale struct {
	SaleID      string          `json:"saleID"`
	InvoiceNo   string          `json:"invoiceNo"`
	CustomerID  string          `json:"customerID"`
	WarehouseID string          `json:"warehouseID"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Balance     decimal.Decimal `json:"balance"`
	IsDeleted   bool            `json:"isDeleted"`
	Timestamps
}
