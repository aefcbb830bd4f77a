package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/documents/order"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles HTTP requests for customer Order documents.
type OrderHandler struct {
	*DocumentHandler
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *DocumentHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{DocumentHandler: base, service: service}
}

// Create handles POST /document/order
func (h *OrderHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc := req.ToEntity()
	if err := h.service.Save(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Update handles PUT /document/order/:id
func (h *OrderHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)

	if err := h.service.Save(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Get handles GET /document/order/:id
func (h *OrderHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// List handles GET /document/order
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := order.ListFilter{ListFilter: h.ParseDocFilter(c)}
	filter.LocationID = h.QueryID(c, "locationId")
	filter.CustomerAccountID = h.QueryID(c, "customerAccountId")
	filter.DateFrom = h.QueryDate(c, "dateFrom")
	filter.DateTo = h.QueryDate(c, "dateTo")

	if status := c.Query("status"); status != "" {
		val := order.Status(status)
		filter.Status = &val
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      result.Items,
		TotalCount: int(result.TotalCount),
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Confirm handles POST /document/order/:id/confirm
func (h *OrderHandler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Confirm(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "order confirmed")
}

// Fulfill handles POST /document/order/:id/fulfill
func (h *OrderHandler) Fulfill(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.FulfillOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Fulfill(ctx, docID, req.SaleNo); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "order fulfilled")
}

// Cancel handles POST /document/order/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "order cancelled")
}

// Delete handles DELETE /document/order/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers order routes.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/confirm", h.Confirm)
	rg.POST("/:id/fulfill", h.Fulfill)
	rg.POST("/:id/cancel", h.Cancel)
}
