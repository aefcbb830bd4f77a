package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/documents/adjustment"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// AdjustmentHandler handles HTTP requests for StockAdjustment documents.
type AdjustmentHandler struct {
	*DocumentHandler
	service *adjustment.Service
}

// NewAdjustmentHandler creates a new stock adjustment handler.
func NewAdjustmentHandler(base *DocumentHandler, service *adjustment.Service) *AdjustmentHandler {
	return &AdjustmentHandler{DocumentHandler: base, service: service}
}

// Create handles POST /document/stock-adjustment
func (h *AdjustmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAdjustmentRequest
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

// Update handles PUT /document/stock-adjustment/:id
func (h *AdjustmentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAdjustmentRequest
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

// Get handles GET /document/stock-adjustment/:id
func (h *AdjustmentHandler) Get(c *gin.Context) {
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

// List handles GET /document/stock-adjustment
func (h *AdjustmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := adjustment.ListFilter{ListFilter: h.ParseDocFilter(c)}
	filter.LocationID = h.QueryID(c, "locationId")
	filter.DateFrom = h.QueryDate(c, "dateFrom")
	filter.DateTo = h.QueryDate(c, "dateTo")

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

// Delete handles DELETE /document/stock-adjustment/:id
func (h *AdjustmentHandler) Delete(c *gin.Context) {
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

// Recover handles POST /document/stock-adjustment/:id/recover
func (h *AdjustmentHandler) Recover(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Recover(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "document recovered")
}

// RegisterRoutes registers stock adjustment routes.
func (h *AdjustmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/recover", h.Recover)
}
