package services

import (
	portsrepo "github.com/wareflow/wareflow_backend/internal/core/ports/repositories"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Warehouse = NewWarehouseService(repos.WarehouseRepo)
	container.Sale = NewSaleService(repos.SaleRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo)

	// The payment service validates against the directories and ledgers,
	// so it takes their repositories directly.
	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		repos.CustomerRepo,
		repos.SupplierRepo,
		repos.SaleRepo,
		repos.PurchaseRepo,
	)

	return container
}
