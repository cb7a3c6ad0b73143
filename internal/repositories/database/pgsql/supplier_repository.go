package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wareflow/wareflow_backend/internal/apperrors"
	"github.com/wareflow/wareflow_backend/internal/core/domain"
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
)

type PgxSupplierRepository struct {
	BaseRepository
}

// NewPgxSupplierRepository creates a new repository for supplier data.
func NewPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepository = (*PgxSupplierRepository)(nil)

// SaveSupplier inserts a supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, name, phone, email, address, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.Phone,
		supplier.Email,
		supplier.Address,
		supplier.IsDeleted,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("supplier %s: %w", supplier.SupplierID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save supplier %s: %w", supplier.SupplierID, err)
	}
	return nil
}

// FindSupplierByID retrieves a supplier by ID, excluding soft-deleted rows.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), is_deleted, created_at, updated_at
		FROM suppliers
		WHERE supplier_id = $1 AND is_deleted = FALSE;
	`
	var supplier domain.Supplier
	err := r.Pool.QueryRow(ctx, query, supplierID).Scan(
		&supplier.SupplierID,
		&supplier.Name,
		&supplier.Phone,
		&supplier.Email,
		&supplier.Address,
		&supplier.IsDeleted,
		&supplier.CreatedAt,
		&supplier.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}
	return &supplier, nil
}

// ListSuppliers retrieves non-deleted suppliers ordered by creation time.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), is_deleted, created_at, updated_at
		FROM suppliers
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var supplier domain.Supplier
		if err := rows.Scan(
			&supplier.SupplierID,
			&supplier.Name,
			&supplier.Phone,
			&supplier.Email,
			&supplier.Address,
			&supplier.IsDeleted,
			&supplier.CreatedAt,
			&supplier.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

// MarkSupplierDeleted soft-deletes a supplier.
func (r *PgxSupplierRepository) MarkSupplierDeleted(ctx context.Context, supplierID string, deletedAt time.Time) error {
	query := `
		UPDATE suppliers
		SET is_deleted = TRUE, updated_at = $2
		WHERE supplier_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.Pool.Exec(ctx, query, supplierID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to soft-delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
