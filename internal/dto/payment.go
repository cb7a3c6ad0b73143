package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
)

// RecordPaymentRequest carries a balance payment submission. Exactly one of
// CustomerID/SupplierID and at most one of SaleID/PurchaseID may be set;
// that shape is validated by the payment service, not by binding, so the
// violated rule can be reported precisely.
type RecordPaymentRequest struct {
	CustomerID    *string         `json:"customerId"`
	SupplierID    *string         `json:"supplierId"`
	SaleID        *string         `json:"saleId"`     // sale invoice number
	PurchaseID    *string         `json:"purchaseId"` // purchase reference number
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=CASH CARD BANK_TRANSFER MOBILE_MONEY"`
	Notes         string          `json:"notes"`
	WarehousesID  *string         `json:"warehousesId"`
}

// ListPaymentsParams filters payment history by owner. Exactly one of the
// two must be supplied.
type ListPaymentsParams struct {
	CustomerID *string `form:"customerId"`
	SupplierID *string `form:"supplierId"`
}

// BalancePaymentResponse is the wire representation of a payment with its
// resolved associations, matching the flat column layout callers expect.
type BalancePaymentResponse struct {
	ID            string            `json:"id"`
	CustomerID    *string           `json:"customerId"`
	SupplierID    *string           `json:"supplierId"`
	SaleID        *string           `json:"saleId"`
	PurchaseID    *string           `json:"purchaseId"`
	Amount        decimal.Decimal   `json:"amount"`
	PaymentMethod string            `json:"paymentMethod"`
	ReceiptNo     string            `json:"receiptNo"`
	Notes         string            `json:"notes,omitempty"`
	WarehousesID  *string           `json:"warehousesId"`
	CreatedAt     time.Time         `json:"createdAt"`
	Customer      *CustomerResponse `json:"customer,omitempty"`
	Supplier      *SupplierResponse `json:"supplier,omitempty"`
	Sale          *SaleResponse     `json:"sale,omitempty"`
	Purchase      *PurchaseResponse `json:"purchase,omitempty"`
}

// RecordPaymentResponse is the envelope returned on successful creation.
type RecordPaymentResponse struct {
	Success        bool                   `json:"success"`
	BalancePayment BalancePaymentResponse `json:"balancePayment"`
	Message        string                 `json:"message"`
}

// ListPaymentsResponse is the envelope for payment history queries.
type ListPaymentsResponse struct {
	Success         bool                     `json:"success"`
	BalancePayments []BalancePaymentResponse `json:"balancePayments"`
}

// ToBalancePaymentResponse converts payment details to the wire shape,
// flattening the tagged party/ledger references back into nullable fields.
func ToBalancePaymentResponse(d *domain.BalancePaymentDetails) BalancePaymentResponse {
	resp := BalancePaymentResponse{
		ID:            d.PaymentID,
		Amount:        d.Amount,
		PaymentMethod: string(d.PaymentMethod),
		ReceiptNo:     d.ReceiptNo,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
	}

	switch d.Party.Kind {
	case domain.PartyCustomer:
		id := d.Party.ID
		resp.CustomerID = &id
	case domain.PartySupplier:
		id := d.Party.ID
		resp.SupplierID = &id
	}

	if d.Ledger != nil {
		ref := d.Ledger.Ref
		switch d.Ledger.Kind {
		case domain.LedgerSale:
			resp.SaleID = &ref
		case domain.LedgerPurchase:
			resp.PurchaseID = &ref
		}
	}

	if d.WarehouseID != "" {
		wid := d.WarehouseID
		resp.WarehousesID = &wid
	}

	if d.Customer != nil {
		c := ToCustomerResponse(d.Customer)
		resp.Customer = &c
	}
	if d.Supplier != nil {
		s := ToSupplierResponse(d.Supplier)
		resp.Supplier = &s
	}
	if d.Sale != nil {
		s := ToSaleResponse(d.Sale)
		resp.Sale = &s
	}
	if d.Purchase != nil {
		p := ToPurchaseResponse(d.Purchase)
		resp.Purchase = &p
	}

	return resp
}

// ToListPaymentsResponse converts a history slice into the list envelope.
func ToListPaymentsResponse(details []domain.BalancePaymentDetails) ListPaymentsResponse {
	payments := make([]BalancePaymentResponse, len(details))
	for i := range details {
		payments[i] = ToBalancePaymentResponse(&details[i])
	}
	return ListPaymentsResponse{Success: true, BalancePayments: payments}
}
