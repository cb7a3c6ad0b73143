package domain

// Customer represents a buyer in the customer directory.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	IsDeleted  bool   `json:"isDeleted"`
	Timestamps
}
