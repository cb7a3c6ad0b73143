package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wareflow/wareflow_backend/internal/apperrors"
	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	"github.com/wareflow/wareflow_backend/internal/models"
	"github.com/wareflow/wareflow_backend/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// NewPgxPaymentRepository creates a new repository for balance payment data.
func NewPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, customer_id, supplier_id, sale_id, purchase_id, amount, payment_method, receipt_no, notes, warehouses_id, is_deleted, created_at`

// SavePayment inserts the payment and applies the balance decrement to the
// referenced ledger row within one database transaction. The decrement is
// guarded by balance >= amount, so a concurrent payment that already consumed
// the balance makes this one fail with ErrInsufficientBalance and nothing is
// committed.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.BalancePayment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	m := mapping.ToModelBalancePayment(payment)

	insertQuery := `
		INSERT INTO balance_payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.PaymentID,
		m.CustomerID,
		m.SupplierID,
		m.SaleID,
		m.PurchaseID,
		m.Amount,
		m.PaymentMethod,
		m.ReceiptNo,
		m.Notes,
		m.WarehousesID,
		m.IsDeleted,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("receipt number %s: %w", m.ReceiptNo, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert balance payment %s: %w", m.PaymentID, err)
	}

	if m.SaleID != nil {
		if err := r.applyToLedger(ctx, tx, "sales", "invoice_no", *m.SaleID, payment); err != nil {
			return err
		}
	}
	if m.PurchaseID != nil {
		if err := r.applyToLedger(ctx, tx, "purchases", "reference_no", *m.PurchaseID, payment); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// applyToLedger performs the conditional decrement on a ledger table. A zero
// rows-affected result means either the row is gone or its balance can no
// longer absorb the amount; the follow-up existence check tells the two apart.
func (r *PgxPaymentRepository) applyToLedger(ctx context.Context, tx pgx.Tx, table, refColumn, ref string, payment domain.BalancePayment) error {
	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET balance = balance - $1, paid_amount = paid_amount + $1, updated_at = $2
		WHERE %s = $3 AND is_deleted = FALSE AND balance >= $1;
	`, table, refColumn)

	tag, err := tx.Exec(ctx, updateQuery, payment.Amount, payment.CreatedAt, ref)
	if err != nil {
		return fmt.Errorf("failed to update %s balance for %s: %w", table, ref, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	existsQuery := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND is_deleted = FALSE);`, table, refColumn)
	var exists bool
	if err := tx.QueryRow(ctx, existsQuery, ref).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check %s row %s: %w", table, ref, err)
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", table, ref, apperrors.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", table, ref, apperrors.ErrInsufficientBalance)
}

// FindPaymentsByParty retrieves the non-deleted payments owned by the given
// customer or supplier, newest first.
func (r *PgxPaymentRepository) FindPaymentsByParty(ctx context.Context, party domain.PartyRef) ([]domain.BalancePayment, error) {
	ownerColumn := "customer_id"
	if party.Kind == domain.PartySupplier {
		ownerColumn = "supplier_id"
	}

	query := fmt.Sprintf(`
		SELECT `+paymentColumns+`
		FROM balance_payments
		WHERE %s = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC;
	`, ownerColumn)

	rows, err := r.Pool.Query(ctx, query, party.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for %s: %w", party.ID, err)
	}
	defer rows.Close()

	payments := []domain.BalancePayment{}
	for rows.Next() {
		var m models.BalancePayment
		if err := scanPayment(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan payment row for %s: %w", party.ID, err)
		}
		payments = append(payments, mapping.ToDomainBalancePayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows for %s: %w", party.ID, err)
	}

	return payments, nil
}

// FindPaymentByReceiptNo retrieves a single non-deleted payment by its
// receipt number.
func (r *PgxPaymentRepository) FindPaymentByReceiptNo(ctx context.Context, receiptNo string) (*domain.BalancePayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM balance_payments
		WHERE receipt_no = $1 AND is_deleted = FALSE;
	`

	var m models.BalancePayment
	row := r.Pool.QueryRow(ctx, query, receiptNo)
	if err := scanPayment(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by receipt %s: %w", receiptNo, err)
	}

	payment := mapping.ToDomainBalancePayment(m)
	return &payment, nil
}

// scanPayment scans one balance_payments row; pgx.Rows satisfies pgx.Row.
func scanPayment(row pgx.Row, m *models.BalancePayment) error {
	return row.Scan(
		&m.PaymentID,
		&m.CustomerID,
		&m.SupplierID,
		&m.SaleID,
		&m.PurchaseID,
		&m.Amount,
		&m.PaymentMethod,
		&m.ReceiptNo,
		&m.Notes,
		&m.WarehousesID,
		&m.IsDeleted,
		&m.CreatedAt,
	)
}
