package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/documents/kitchenissue"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// KitchenIssueHandler handles HTTP requests for KitchenIssue documents.
type KitchenIssueHandler struct {
	*DocumentHandler
	service *kitchenissue.Service
}

// NewKitchenIssueHandler creates a new kitchen issue handler.
func NewKitchenIssueHandler(base *DocumentHandler, service *kitchenissue.Service) *KitchenIssueHandler {
	return &KitchenIssueHandler{DocumentHandler: base, service: service}
}

// Create handles POST /document/kitchen-issue
func (h *KitchenIssueHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateKitchenIssueRequest
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

// Update handles PUT /document/kitchen-issue/:id
func (h *KitchenIssueHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateKitchenIssueRequest
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

// Get handles GET /document/kitchen-issue/:id
func (h *KitchenIssueHandler) Get(c *gin.Context) {
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

// List handles GET /document/kitchen-issue
func (h *KitchenIssueHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := kitchenissue.ListFilter{ListFilter: h.ParseDocFilter(c)}
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

// Delete handles DELETE /document/kitchen-issue/:id
func (h *KitchenIssueHandler) Delete(c *gin.Context) {
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

// Recover handles POST /document/kitchen-issue/:id/recover
func (h *KitchenIssueHandler) Recover(c *gin.Context) {
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

// RegisterRoutes registers kitchen issue routes.
func (h *KitchenIssueHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/recover", h.Recover)
}
