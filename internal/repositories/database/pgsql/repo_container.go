package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx repositories against a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:  NewPgxCustomerRepository(pool),
		SupplierRepo:  NewPgxSupplierRepository(pool),
		SaleRepo:      NewPgxSaleRepository(pool),
		PurchaseRepo:  NewPgxPurchaseRepository(pool),
		WarehouseRepo: NewPgxWarehouseRepository(pool),
		PaymentRepo:   NewPgxPaymentRepository(pool),
	}
}
