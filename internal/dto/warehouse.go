package dto

import (
	"time"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
)

// CreateWarehouseRequest defines the data needed to register a warehouse.
type CreateWarehouseRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// WarehouseResponse defines the data returned for a warehouse.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListWarehousesParams defines query parameters for listing warehouses.
type ListWarehousesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListWarehousesResponse wraps the list of warehouses.
type ListWarehousesResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}

// ToWarehouseResponse converts a domain.Warehouse to its response DTO.
func ToWarehouseResponse(w *domain.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.WarehouseID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToListWarehousesResponse converts a slice of warehouses to the list envelope.
func ToListWarehousesResponse(warehouses []domain.Warehouse) ListWarehousesResponse {
	res := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		res[i] = ToWarehouseResponse(&warehouses[i])
	}
	return ListWarehousesResponse{Warehouses: res}
}
