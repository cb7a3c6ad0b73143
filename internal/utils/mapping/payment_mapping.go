package mapping

import (
	"github.com/wareflow/wareflow_backend/internal/core/domain"
	"github.com/wareflow/wareflow_backend/internal/models"
)

// ToModelBalancePayment flattens the tagged party/ledger references into the
// nullable column layout of the balance_payments table.
func ToModelBalancePayment(p domain.BalancePayment) models.BalancePayment {
	m := models.BalancePayment{
		PaymentID:     p.PaymentID,
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		ReceiptNo:     p.ReceiptNo,
		IsDeleted:     p.IsDeleted,
		CreatedAt:     p.CreatedAt,
	}

	switch p.Party.Kind {
	case domain.PartyCustomer:
		m.CustomerID = &p.Party.ID
	case domain.PartySupplier:
		m.SupplierID = &p.Party.ID
	}

	if p.Ledger != nil {
		switch p.Ledger.Kind {
		case domain.LedgerSale:
			m.SaleID = &p.Ledger.Ref
		case domain.LedgerPurchase:
			m.PurchaseID = &p.Ledger.Ref
		}
	}

	if p.Notes != "" {
		m.Notes = &p.Notes
	}
	if p.WarehouseID != "" {
		m.WarehousesID = &p.WarehouseID
	}

	return m
}

// ToDomainBalancePayment rebuilds the tagged references from a scanned row.
func ToDomainBalancePayment(m models.BalancePayment) domain.BalancePayment {
	p := domain.BalancePayment{
		PaymentID:     m.PaymentID,
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		ReceiptNo:     m.ReceiptNo,
		IsDeleted:     m.IsDeleted,
		CreatedAt:     m.CreatedAt,
	}

	switch {
	case m.CustomerID != nil:
		p.Party = domain.PartyRef{Kind: domain.PartyCustomer, ID: *m.CustomerID}
	case m.SupplierID != nil:
		p.Party = domain.PartyRef{Kind: domain.PartySupplier, ID: *m.SupplierID}
	}

	switch {
	case m.SaleID != nil:
		p.Ledger = &domain.LedgerRef{Kind: domain.LedgerSale, Ref: *m.SaleID}
	case m.PurchaseID != nil:
		p.Ledger = &domain.LedgerRef{Kind: domain.LedgerPurchase, Ref: *m.PurchaseID}
	}

	if m.Notes != nil {
		p.Notes = *m.Notes
	}
	if m.WarehousesID != nil {
		p.WarehouseID = *m.WarehousesID
	}

	return p
}
