package domain

// Warehouse represents a stock location that payments and ledger rows may
// be associated with.
type Warehouse struct {
	WarehouseID string `json:"warehouseID"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	IsDeleted   bool   `json:"isDeleted"`
	Timestamps
}
