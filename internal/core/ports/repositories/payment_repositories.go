package repositories

import (
	"context"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
)

// PaymentRepository defines the persistence operations for balance payments.
//
// SavePayment persists the payment and, when the payment carries a ledger
// reference, applies the balance decrement to the referenced sale or purchase
// in the same database transaction. The decrement is conditional on the row
// still holding enough balance; implementations return
// apperrors.ErrInsufficientBalance when a concurrent payment got there first,
// apperrors.ErrNotFound when the ledger row is missing or soft-deleted, and
// apperrors.ErrDuplicate on a receipt number collision.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment domain.BalancePayment) error
	FindPaymentsByParty(ctx context.Context, party domain.PartyRef) ([]domain.BalancePayment, error)
	FindPaymentByReceiptNo(ctx context.Context, receiptNo string) (*domain.BalancePayment, error)
}
