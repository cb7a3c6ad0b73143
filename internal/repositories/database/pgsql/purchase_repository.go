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
)

type PgxPurchaseRepository struct {
	BaseRepository
}

// NewPgxPurchaseRepository creates a new repository for purchase ledger data.
func NewPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepository {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepository = (*PgxPurchaseRepository)(nil)

// SavePurchase inserts a purchase order. Reference numbers are unique; a
// collision is reported as ErrDuplicate.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	query := `
		INSERT INTO purchases (purchase_id, reference_no, supplier_id, warehouses_id, total_amount, paid_amount, balance, is_deleted, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		purchase.PurchaseID,
		purchase.ReferenceNo,
		purchase.SupplierID,
		purchase.WarehouseID,
		purchase.TotalAmount,
		purchase.PaidAmount,
		purchase.Balance,
		purchase.IsDeleted,
		purchase.CreatedAt,
		purchase.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("reference %s: %w", purchase.ReferenceNo, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save purchase %s: %w", purchase.PurchaseID, err)
	}
	return nil
}

// FindPurchaseByReferenceNo retrieves a purchase by its reference number,
// excluding soft-deleted rows.
func (r *PgxPurchaseRepository) FindPurchaseByReferenceNo(ctx context.Context, referenceNo string) (*domain.Purchase, error) {
	query := `
		SELECT purchase_id, reference_no, COALESCE(supplier_id, ''), COALESCE(warehouses_id, ''), total_amount, paid_amount, balance, is_deleted, created_at, updated_at
		FROM purchases
		WHERE reference_no = $1 AND is_deleted = FALSE;
	`
	var purchase domain.Purchase
	err := r.Pool.QueryRow(ctx, query, referenceNo).Scan(
		&purchase.PurchaseID,
		&purchase.ReferenceNo,
		&purchase.SupplierID,
		&purchase.WarehouseID,
		&purchase.TotalAmount,
		&purchase.PaidAmount,
		&purchase.Balance,
		&purchase.IsDeleted,
		&purchase.CreatedAt,
		&purchase.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by reference %s: %w", referenceNo, err)
	}
	return &purchase, nil
}

// ListPurchases retrieves non-deleted purchases ordered by creation time.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	query := `
		SELECT purchase_id, reference_no, COALESCE(supplier_id, ''), COALESCE(warehouses_id, ''), total_amount, paid_amount, balance, is_deleted, created_at, updated_at
		FROM purchases
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		var purchase domain.Purchase
		if err := rows.Scan(
			&purchase.PurchaseID,
			&purchase.ReferenceNo,
			&purchase.SupplierID,
			&purchase.WarehouseID,
			&purchase.TotalAmount,
			&purchase.PaidAmount,
			&purchase.Balance,
			&purchase.IsDeleted,
			&purchase.CreatedAt,
			&purchase.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}
	return purchases, nil
}
