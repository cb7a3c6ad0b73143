package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wareflow/wareflow_backend/internal/apperrors"
	portssvc "github.com/wareflow/wareflow_backend/internal/core/ports/services"
	"github.com/wareflow/wareflow_backend/internal/dto"
	"github.com/wareflow/wareflow_backend/internal/middleware"
)

// warehouseHandler handles HTTP requests for the warehouse directory.
type warehouseHandler struct {
	warehouseService portssvc.WarehouseSvcFacade
}

func newWarehouseHandler(ws portssvc.WarehouseSvcFacade) *warehouseHandler {
	return &warehouseHandler{warehouseService: ws}
}

// registerWarehouseRoutes registers routes related to warehouses.
func registerWarehouseRoutes(rg *gin.RouterGroup, warehouseService portssvc.WarehouseSvcFacade) {
	h := newWarehouseHandler(warehouseService)

	warehouses := rg.Group("/warehouses")
	{
		warehouses.POST("", h.createWarehouse)
		warehouses.GET("", h.listWarehouses)
		warehouses.GET("/:id", h.getWarehouse)
		warehouses.DELETE("/:id", h.deleteWarehouse)
	}
}

func (h *warehouseHandler) createWarehouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	warehouse, err := h.warehouseService.CreateWarehouse(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create warehouse", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create warehouse"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWarehouseResponse(warehouse))
}

func (h *warehouseHandler) getWarehouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	warehouseID := c.Param("id")

	warehouse, err := h.warehouseService.GetWarehouseByID(c.Request.Context(), warehouseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Warehouse not found"})
			return
		}
		logger.Error("Failed to get warehouse", slog.String("error", err.Error()), slog.String("warehouse_id", warehouseID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve warehouse"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWarehouseResponse(warehouse))
}

func (h *warehouseHandler) listWarehouses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListWarehousesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	warehouses, err := h.warehouseService.ListWarehouses(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list warehouses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list warehouses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWarehousesResponse(warehouses))
}

func (h *warehouseHandler) deleteWarehouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	warehouseID := c.Param("id")

	if err := h.warehouseService.DeleteWarehouse(c.Request.Context(), warehouseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Warehouse not found"})
			return
		}
		logger.Error("Failed to delete warehouse", slog.String("error", err.Error()), slog.String("warehouse_id", warehouseID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete warehouse"})
		return
	}

	c.Status(http.StatusNoContent)
}
