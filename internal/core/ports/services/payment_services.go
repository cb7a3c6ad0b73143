package services

import (
	"context"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
	"github.com/wareflow/wareflow_backend/internal/dto"
)

// PaymentSvcFacade exposes the balance-payment reconciliation operations.
type PaymentSvcFacade interface {
	// RecordPayment validates the request, persists the payment and applies
	// the balance decrement to the referenced sale or purchase atomically.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.BalancePaymentDetails, error)
	// ListPayments returns the non-deleted payment history for exactly one
	// customer or supplier, newest first, with associations resolved.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.BalancePaymentDetails, error)
	// GetPaymentByReceiptNo fetches a single payment for receipt display.
	GetPaymentByReceiptNo(ctx context.Context, receiptNo string) (*domain.BalancePaymentDetails, error)
}
