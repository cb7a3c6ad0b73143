package domain

// Supplier represents a vendor in the supplier directory.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	IsDeleted  bool   `json:"isDeleted"`
	Timestamps
}
