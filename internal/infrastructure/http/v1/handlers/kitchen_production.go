package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/documents/kitchenproduction"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// KitchenProductionHandler handles HTTP requests for KitchenProduction
// documents.
type KitchenProductionHandler struct {
	*DocumentHandler
	service *kitchenproduction.Service
}

// NewKitchenProductionHandler creates a new production receipt handler.
func NewKitchenProductionHandler(base *DocumentHandler, service *kitchenproduction.Service) *KitchenProductionHandler {
	return &KitchenProductionHandler{DocumentHandler: base, service: service}
}

// Create handles POST /document/kitchen-production
func (h *KitchenProductionHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateKitchenProductionRequest
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

// Update handles PUT /document/kitchen-production/:id
func (h *KitchenProductionHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateKitchenProductionRequest
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

// Get handles GET /document/kitchen-production/:id
func (h *KitchenProductionHandler) Get(c *gin.Context) {
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

// List handles GET /document/kitchen-production
func (h *KitchenProductionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := kitchenproduction.ListFilter{ListFilter: h.ParseDocFilter(c)}
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

// Delete handles DELETE /document/kitchen-production/:id
func (h *KitchenProductionHandler) Delete(c *gin.Context) {
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

// Recover handles POST /document/kitchen-production/:id/recover
func (h *KitchenProductionHandler) Recover(c *gin.Context) {
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

// RegisterRoutes registers production receipt routes.
func (h *KitchenProductionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/recover", h.Recover)
}
