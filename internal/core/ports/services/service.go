package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	Customer  CustomerSvcFacade
	Supplier  SupplierSvcFacade
	Warehouse WarehouseSvcFacade
	Sale      SaleSvcFacade
	Purchase  PurchaseSvcFacade
	Payment   PaymentSvcFacade
}
