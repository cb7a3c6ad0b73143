package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wareflow/wareflow_backend/internal/apperrors"
	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
	"github.com/wareflow/wareflow_backend/internal/middleware"
	"github.com/wareflow/wareflow_backend/internal/utils"
)

var (
	ErrPartyRequired        = fmt.Errorf("%w: customer ID or supplier ID, amount, and payment method are required", apperrors.ErrValidation)
	ErrBothParties          = fmt.Errorf("%w: cannot provide both customer ID and supplier ID", apperrors.ErrValidation)
	ErrBothLedgerRefs       = fmt.Errorf("%w: cannot provide both sale ID and purchase ID", apperrors.ErrValidation)
	ErrAmountNotPositive    = fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	ErrExceedsBalance       = fmt.Errorf("%w: payment amount cannot exceed outstanding balance", apperrors.ErrValidation)
	ErrNoOutstandingBalance = errors.New("no outstanding balance")
)

// paymentService implements the balance-payment reconciliation flow.
type paymentService struct {
	paymentRepo  portsrepo.PaymentRepository
	customerRepo portsrepo.CustomerRepository
	supplierRepo portsrepo.SupplierRepository
	saleRepo     portsrepo.SaleRepository
	purchaseRepo portsrepo.PurchaseRepository
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepository,
	customerRepo portsrepo.CustomerRepository,
	supplierRepo portsrepo.SupplierRepository,
	saleRepo portsrepo.SaleRepository,
	purchaseRepo portsrepo.PurchaseRepository,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// partyFromIDs builds the tagged party reference, enforcing that exactly one
// of the two IDs is supplied.
func partyFromIDs(customerID, supplierID *string) (domain.PartyRef, error) {
	hasCustomer := customerID != nil && *customerID != ""
	hasSupplier := supplierID != nil && *supplierID != ""

	switch {
	case hasCustomer && hasSupplier:
		return domain.PartyRef{}, ErrBothParties
	case hasCustomer:
		return domain.PartyRef{Kind: domain.PartyCustomer, ID: *customerID}, nil
	case hasSupplier:
		return domain.PartyRef{Kind: domain.PartySupplier, ID: *supplierID}, nil
	default:
		return domain.PartyRef{}, ErrPartyRequired
	}
}

// ledgerFromRefs builds the optional tagged ledger reference, enforcing that
// at most one of the two references is supplied.
func ledgerFromRefs(saleID, purchaseID *string) (*domain.LedgerRef, error) {
	hasSale := saleID != nil && *saleID != ""
	hasPurchase := purchaseID != nil && *purchaseID != ""

	switch {
	case hasSale && hasPurchase:
		return nil, ErrBothLedgerRefs
	case hasSale:
		return &domain.LedgerRef{Kind: domain.LedgerSale, Ref: *saleID}, nil
	case hasPurchase:
		return &domain.LedgerRef{Kind: domain.LedgerPurchase, Ref: *purchaseID}, nil
	default:
		return nil, nil
	}
}

// RecordPayment validates the request, persists the payment record and
// applies the balance decrement to the referenced ledger row. Validation
// fails fast: the first violated rule is returned. The persistence step is a
// single database transaction in which the ledger decrement is re-checked
// against the current balance, so two concurrent payments that each pass
// validation here cannot jointly drive a balance negative.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.BalancePaymentDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrAmountNotPositive
	}

	party, err := partyFromIDs(req.CustomerID, req.SupplierID)
	if err != nil {
		return nil, err
	}
	ledger, err := ledgerFromRefs(req.SaleID, req.PurchaseID)
	if err != nil {
		return nil, err
	}

	details := domain.BalancePaymentDetails{}

	switch party.Kind {
	case domain.PartyCustomer:
		customer, err := s.customerRepo.FindCustomerByID(ctx, party.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, party.ID)
			}
			return nil, fmt.Errorf("failed to fetch customer %s: %w", party.ID, err)
		}
		details.Customer = customer
	case domain.PartySupplier:
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, party.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, party.ID)
			}
			return nil, fmt.Errorf("failed to fetch supplier %s: %w", party.ID, err)
		}
		details.Supplier = supplier
	}

	if ledger != nil {
		if err := s.checkLedgerBalance(ctx, ledger, req.Amount); err != nil {
			return nil, err
		}
	}

	receiptNo, err := utils.NewReceiptNo()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt number: %w", err)
	}

	payment := domain.BalancePayment{
		PaymentID:     uuid.NewString(),
		Party:         party,
		Ledger:        ledger,
		Amount:        req.Amount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		ReceiptNo:     receiptNo,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}
	if req.WarehousesID != nil {
		payment.WarehouseID = *req.WarehousesID
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			// A concurrent payment consumed the balance between validation
			// and commit. Nothing was written.
			logger.Warn("Payment rejected at commit, balance no longer sufficient",
				slog.String("receipt_no", receiptNo), slog.String("amount", req.Amount.String()))
			return nil, err
		}
		logger.Error("Failed to persist balance payment", slog.String("error", err.Error()), slog.String("receipt_no", receiptNo))
		return nil, fmt.Errorf("failed to persist payment: %w", err)
	}

	details.BalancePayment = payment

	// Reload the ledger row so the response reflects the decremented balance.
	if ledger != nil {
		if err := s.attachLedger(ctx, &details, *ledger); err != nil {
			logger.Warn("Payment persisted but ledger reload failed", slog.String("error", err.Error()))
		}
	}

	logger.Info("Balance payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("receipt_no", receiptNo),
		slog.String("party_kind", string(party.Kind)),
		slog.String("amount", req.Amount.String()),
	)
	return &details, nil
}

// checkLedgerBalance verifies the referenced sale or purchase exists, is not
// soft-deleted, still has outstanding balance, and can absorb the amount.
func (s *paymentService) checkLedgerBalance(ctx context.Context, ledger *domain.LedgerRef, amount decimal.Decimal) error {
	var balance decimal.Decimal

	switch ledger.Kind {
	case domain.LedgerSale:
		sale, err := s.saleRepo.FindSaleByInvoiceNo(ctx, ledger.Ref)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, ledger.Ref)
			}
			return fmt.Errorf("failed to fetch sale %s: %w", ledger.Ref, err)
		}
		balance = sale.Balance
	case domain.LedgerPurchase:
		purchase, err := s.purchaseRepo.FindPurchaseByReferenceNo(ctx, ledger.Ref)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: purchase %s", apperrors.ErrNotFound, ledger.Ref)
			}
			return fmt.Errorf("failed to fetch purchase %s: %w", ledger.Ref, err)
		}
		balance = purchase.Balance
	}

	if balance.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s %s", ErrNoOutstandingBalance, ledger.Kind, ledger.Ref)
	}
	if amount.GreaterThan(balance) {
		return ErrExceedsBalance
	}
	return nil
}

// attachLedger loads the referenced sale or purchase onto the details.
func (s *paymentService) attachLedger(ctx context.Context, details *domain.BalancePaymentDetails, ledger domain.LedgerRef) error {
	switch ledger.Kind {
	case domain.LedgerSale:
		sale, err := s.saleRepo.FindSaleByInvoiceNo(ctx, ledger.Ref)
		if err != nil {
			return err
		}
		details.Sale = sale
	case domain.LedgerPurchase:
		purchase, err := s.purchaseRepo.FindPurchaseByReferenceNo(ctx, ledger.Ref)
		if err != nil {
			return err
		}
		details.Purchase = purchase
	}
	return nil
}

// ListPayments returns the payment history for exactly one customer or
// supplier, newest first.
func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.BalancePaymentDetails, error) {
	party, err := partyFromIDs(params.CustomerID, params.SupplierID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindPaymentsByParty(ctx, party)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments for %s %s: %w", party.Kind, party.ID, err)
	}

	// The party is shared by every row; resolve it once. Ledger rows are
	// resolved per distinct reference.
	var customer *domain.Customer
	var supplier *domain.Supplier
	switch party.Kind {
	case domain.PartyCustomer:
		customer, err = s.customerRepo.FindCustomerByID(ctx, party.ID)
	case domain.PartySupplier:
		supplier, err = s.supplierRepo.FindSupplierByID(ctx, party.ID)
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve party %s %s: %w", party.Kind, party.ID, err)
	}

	sales := make(map[string]*domain.Sale)
	purchases := make(map[string]*domain.Purchase)

	details := make([]domain.BalancePaymentDetails, len(payments))
	for i, payment := range payments {
		d := domain.BalancePaymentDetails{
			BalancePayment: payment,
			Customer:       customer,
			Supplier:       supplier,
		}
		if payment.Ledger != nil {
			switch payment.Ledger.Kind {
			case domain.LedgerSale:
				sale, ok := sales[payment.Ledger.Ref]
				if !ok {
					sale, err = s.saleRepo.FindSaleByInvoiceNo(ctx, payment.Ledger.Ref)
					if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
						return nil, fmt.Errorf("failed to resolve sale %s: %w", payment.Ledger.Ref, err)
					}
					sales[payment.Ledger.Ref] = sale
				}
				d.Sale = sale
			case domain.LedgerPurchase:
				purchase, ok := purchases[payment.Ledger.Ref]
				if !ok {
					purchase, err = s.purchaseRepo.FindPurchaseByReferenceNo(ctx, payment.Ledger.Ref)
					if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
						return nil, fmt.Errorf("failed to resolve purchase %s: %w", payment.Ledger.Ref, err)
					}
					purchases[payment.Ledger.Ref] = purchase
				}
				d.Purchase = purchase
			}
		}
		details[i] = d
	}

	return details, nil
}

// GetPaymentByReceiptNo fetches a single payment with associations resolved.
func (s *paymentService) GetPaymentByReceiptNo(ctx context.Context, receiptNo string) (*domain.BalancePaymentDetails, error) {
	payment, err := s.paymentRepo.FindPaymentByReceiptNo(ctx, receiptNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, receiptNo)
		}
		return nil, fmt.Errorf("failed to fetch payment %s: %w", receiptNo, err)
	}

	details := domain.BalancePaymentDetails{BalancePayment: *payment}

	switch payment.Party.Kind {
	case domain.PartyCustomer:
		customer, err := s.customerRepo.FindCustomerByID(ctx, payment.Party.ID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve customer %s: %w", payment.Party.ID, err)
		}
		details.Customer = customer
	case domain.PartySupplier:
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, payment.Party.ID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve supplier %s: %w", payment.Party.ID, err)
		}
		details.Supplier = supplier
	}

	if payment.Ledger != nil {
		if err := s.attachLedger(ctx, &details, *payment.Ledger); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve ledger for receipt %s: %w", receiptNo, err)
		}
	}

	return &details, nil
}
