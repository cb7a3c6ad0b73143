package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wareflow/wareflow_backend/internal/core/domain"
)

// CreateSaleRequest defines the data needed to record a sales invoice.
// PaidAmount is the amount collected up front; the outstanding balance is
// initialized to TotalAmount minus PaidAmount.
type CreateSaleRequest struct {
	InvoiceNo    string          `json:"invoiceNo" binding:"required"`
	CustomerID   *string         `json:"customerId"`
	WarehousesID *string         `json:"warehousesId"`
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	ID           string          `json:"id"`
	InvoiceNo    string          `json:"invoiceNo"`
	CustomerID   *string         `json:"customerId"`
	WarehousesID *string         `json:"warehousesId"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListSalesResponse wraps the list of sales.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain.Sale to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	resp := SaleResponse{
		ID:          s.SaleID,
		InvoiceNo:   s.InvoiceNo,
		TotalAmount: s.TotalAmount,
		PaidAmount:  s.PaidAmount,
		Balance:     s.Balance,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.CustomerID != "" {
		id := s.CustomerID
		resp.CustomerID = &id
	}
	if s.WarehouseID != "" {
		wid := s.WarehouseID
		resp.WarehousesID = &wid
	}
	return resp
}

// ToListSalesResponse converts a slice of sales to the list envelope.
func ToListSalesResponse(sales []domain.Sale) ListSalesResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return ListSalesResponse{Sales: res}
}
