package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyKind identifies which directory a payment party belongs to.
type PartyKind string

const (
	PartyCustomer PartyKind = "CUSTOMER"
	PartySupplier PartyKind = "SUPPLIER"
)

// PartyRef is a tagged reference to exactly one customer or supplier.
// A payment always has exactly one party; the union makes the
// customer/supplier mutual exclusivity structural rather than a runtime check.
type PartyRef struct {
	Kind PartyKind `json:"kind"`
	ID   string    `json:"id"`
}

// LedgerKind identifies which ledger a payment is applied against.
type LedgerKind string

const (
	LedgerSale     LedgerKind = "SALE"
	LedgerPurchase LedgerKind = "PURCHASE"
)

// LedgerRef is a tagged reference to a sale (by invoice number) or a purchase
// (by reference number). A payment carries at most one ledger reference; a nil
// LedgerRef is a general payment not tied to a specific invoice.
type LedgerRef struct {
	Kind LedgerKind `json:"kind"`
	Ref  string     `json:"ref"`
}

// PaymentMethod enumerates the accepted payment instruments.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodCard         PaymentMethod = "CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
)

// BalancePayment represents a payment applied against a party's outstanding
// balance, optionally reconciled against a specific sale or purchase.
// Immutable once written except for the soft-delete flag.
type BalancePayment struct {
	PaymentID     string          `json:"paymentID"`
	Party         PartyRef        `json:"party"`
	Ledger        *LedgerRef      `json:"ledger,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	ReceiptNo     string          `json:"receiptNo"`
	Notes         string          `json:"notes"`
	WarehouseID   string          `json:"warehouseID"`
	IsDeleted     bool            `json:"isDeleted"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// BalancePaymentDetails is a BalancePayment together with its resolved
// associations, as returned to callers.
type BalancePaymentDetails struct {
	BalancePayment
	Customer *Customer `json:"customer,omitempty"`
	Supplier *Supplier `json:"supplier,omitempty"`
	Sale     *Sale     `json:"sale,omitempty"`
	Purchase *Purchase `json:"purchase,omitempty"`
}
