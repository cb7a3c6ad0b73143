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

type PgxWarehouseRepository struct {
	BaseRepository
}

// NewPgxWarehouseRepository creates a new repository for warehouse data.
func NewPgxWarehouseRepository(pool *pgxpool.Pool) portsrepo.WarehouseRepository {
	return &PgxWarehouseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WarehouseRepository = (*PgxWarehouseRepository)(nil)

// SaveWarehouse inserts a warehouse.
func (r *PgxWarehouseRepository) SaveWarehouse(ctx context.Context, warehouse domain.Warehouse) error {
	query := `
		INSERT INTO warehouses (warehouse_id, name, address, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		warehouse.WarehouseID,
		warehouse.Name,
		warehouse.Address,
		warehouse.IsDeleted,
		warehouse.CreatedAt,
		warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("warehouse %s: %w", warehouse.WarehouseID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save warehouse %s: %w", warehouse.WarehouseID, err)
	}
	return nil
}

// FindWarehouseByID retrieves a warehouse by ID, excluding soft-deleted rows.
func (r *PgxWarehouseRepository) FindWarehouseByID(ctx context.Context, warehouseID string) (*domain.Warehouse, error) {
	query := `
		SELECT warehouse_id, name, COALESCE(address, ''), is_deleted, created_at, updated_at
		FROM warehouses
		WHERE warehouse_id = $1 AND is_deleted = FALSE;
	`
	var warehouse domain.Warehouse
	err := r.Pool.QueryRow(ctx, query, warehouseID).Scan(
		&warehouse.WarehouseID,
		&warehouse.Name,
		&warehouse.Address,
		&warehouse.IsDeleted,
		&warehouse.CreatedAt,
		&warehouse.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find warehouse by ID %s: %w", warehouseID, err)
	}
	return &warehouse, nil
}

// ListWarehouses retrieves non-deleted warehouses ordered by creation time.
func (r *PgxWarehouseRepository) ListWarehouses(ctx context.Context, limit int, offset int) ([]domain.Warehouse, error) {
	query := `
		SELECT warehouse_id, name, COALESCE(address, ''), is_deleted, created_at, updated_at
		FROM warehouses
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouses: %w", err)
	}
	defer rows.Close()

	warehouses := []domain.Warehouse{}
	for rows.Next() {
		var warehouse domain.Warehouse
		if err := rows.Scan(
			&warehouse.WarehouseID,
			&warehouse.Name,
			&warehouse.Address,
			&warehouse.IsDeleted,
			&warehouse.CreatedAt,
			&warehouse.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse row: %w", err)
		}
		warehouses = append(warehouses, warehouse)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating warehouse rows: %w", err)
	}
	return warehouses, nil
}

// MarkWarehouseDeleted soft-deletes a warehouse.
func (r *PgxWarehouseRepository) MarkWarehouseDeleted(ctx context.Context, warehouseID string, deletedAt time.Time) error {
	query := `
		UPDATE warehouses
		SET is_deleted = TRUE, updated_at = $2
		WHERE warehouse_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.Pool.Exec(ctx, query, warehouseID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to soft-delete warehouse %s: %w", warehouseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
