package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	CustomerRepo  CustomerRepository
	SupplierRepo  SupplierRepository
	SaleRepo      SaleRepository
	PurchaseRepo  PurchaseRepository
	WarehouseRepo WarehouseRepository
	PaymentRepo   PaymentRepository
}
