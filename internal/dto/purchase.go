package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
)

// CreatePurchaseRequest defines the data needed to record a purchase order.
type CreatePurchaseRequest struct {
	ReferenceNo  string          `json:"referenceNo" binding:"required"`
	SupplierID   *string         `json:"supplierId"`
	WarehousesID *string         `json:"warehousesId"`
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	ID           string          `json:"id"`
	ReferenceNo  string          `json:"referenceNo"`
	SupplierID   *string         `json:"supplierId"`
	WarehousesID *string         `json:"warehousesId"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ListPurchasesParams defines query parameters for listing purchases.
type ListPurchasesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListPurchasesResponse wraps the list of purchases.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// ToPurchaseResponse converts a domain.Purchase to its response DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		ID:          p.PurchaseID,
		ReferenceNo: p.ReferenceNo,
		TotalAmount: p.TotalAmount,
		PaidAmount:  p.PaidAmount,
		Balance:     p.Balance,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.SupplierID != "" {
		id := p.SupplierID
		resp.SupplierID = &id
	}
	if p.WarehouseID != "" {
		wid := p.WarehouseID
		resp.WarehousesID = &wid
	}
	return resp
}

// ToListPurchasesResponse converts a slice of purchases to the list envelope.
func ToListPurchasesResponse(purchases []domain.Purchase) ListPurchasesResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseResponse(&purchases[i])
	}
	return ListPurchasesResponse{Purchases: res}
}
