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

type PgxSaleRepository struct {
	BaseRepository
}

// NewPgxSaleRepository creates a new repository for sales ledger data.
func NewPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

// SaveSale inserts a sales invoice. Invoice numbers are unique; a collision
// is reported as ErrDuplicate.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (sale_id, invoice_no, customer_id, warehouses_id, total_amount, paid_amount, balance, is_deleted, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		sale.SaleID,
		sale.InvoiceNo,
		sale.CustomerID,
		sale.WarehouseID,
		sale.TotalAmount,
		sale.PaidAmount,
		sale.Balance,
		sale.IsDeleted,
		sale.CreatedAt,
		sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice %s: %w", sale.InvoiceNo, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save sale %s: %w", sale.SaleID, err)
	}
	return nil
}

// FindSaleByInvoiceNo retrieves a sale by its invoice number, excluding
// soft-deleted rows.
func (r *PgxSaleRepository) FindSaleByInvoiceNo(ctx context.Context, invoiceNo string) (*domain.Sale, error) {
	query := `
		SELECT sale_id, invoice_no, COALESCE(customer_id, ''), COALESCE(warehouses_id, ''), total_amount, paid_amount, balance, is_deleted, created_at, updated_at
		FROM sales
		WHERE invoice_no = $1 AND is_deleted = FALSE;
	`
	var sale domain.Sale
	err := r.Pool.QueryRow(ctx, query, invoiceNo).Scan(
		&sale.SaleID,
		&sale.InvoiceNo,
		&sale.CustomerID,
		&sale.WarehouseID,
		&sale.TotalAmount,
		&sale.PaidAmount,
		&sale.Balance,
		&sale.IsDeleted,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by invoice %s: %w", invoiceNo, err)
	}
	return &sale, nil
}

// ListSales retrieves non-deleted sales ordered by creation time.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	query := `
		SELECT sale_id, invoice_no, COALESCE(customer_id, ''), COALESCE(warehouses_id, ''), total_amount, paid_amount, balance, is_deleted, created_at, updated_at
		FROM sales
		WHERE is_deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.SaleID,
			&sale.InvoiceNo,
			&sale.CustomerID,
			&sale.WarehouseID,
			&sale.TotalAmount,
			&sale.PaidAmount,
			&sale.Balance,
			&sale.IsDeleted,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return sales, nil
}
