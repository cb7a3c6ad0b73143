package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wareflow/wareflow_backend/internal/apperrors"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/core/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
	"github.com/wareflow/wareflow_backend/internal/middleware"
)

// paymentHandler handles HTTP requests for balance payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// RegisterPaymentRoutes registers routes related to balance payments.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/balance-payment")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
		payments.GET("/receipt/:receiptNo", h.getPaymentByReceipt)
	}
}

// recordPayment godoc
// @Summary Record a balance payment
// @Description Applies a payment against a customer's or supplier's outstanding balance, optionally reconciling it with a sale or purchase
// @Tags balance-payment
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or validation error"
// @Failure 404 {object} map[string]string "Customer, supplier, sale or purchase not found"
// @Failure 409 {object} map[string]string "Balance consumed by a concurrent payment"
// @Failure 500 {object} map[string]string "Failed to process payment"
// @Router /balance-payment [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	details, err := h.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, services.ErrNoOutstandingBalance):
			logger.Warn("Validation error recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Referenced entity not found recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			logger.Warn("Payment lost balance race", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Outstanding balance was consumed by a concurrent payment"})
		default:
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	logger.Info("Balance payment processed", slog.String("receipt_no", details.ReceiptNo))
	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Success:        true,
		BalancePayment: dto.ToBalancePaymentResponse(details),
		Message:        "Balance payment processed successfully",
	})
}

// listPayments godoc
// @Summary List balance payments
// @Description Returns the payment history for exactly one customer or supplier, newest first
// @Tags balance-payment
// @Produce  json
// @Param   customerId query string false "Customer ID"
// @Param   supplierId query string false "Supplier ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Zero or both owner filters supplied"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /balance-payment [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	details, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing payments", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(details))
}

// getPaymentByReceipt godoc
// @Summary Get a balance payment by receipt number
// @Tags balance-payment
// @Produce  json
// @Param   receiptNo path string true "Receipt number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to fetch payment"
// @Router /balance-payment/receipt/{receiptNo} [get]
func (h *paymentHandler) getPaymentByReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptNo := c.Param("receiptNo")

	details, err := h.paymentService.GetPaymentByReceiptNo(c.Request.Context(), receiptNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		logger.Error("Failed to fetch payment by receipt", slog.String("error", err.Error()), slog.String("receipt_no", receiptNo))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "balancePayment": dto.ToBalancePaymentResponse(details)})
}
