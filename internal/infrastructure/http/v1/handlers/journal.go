package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/domain/documents/journal"
	"bakehouse/internal/infrastructure/http/v1/dto"
)

// JournalHandler handles HTTP requests for JournalVoucher documents.
type JournalHandler struct {
	*DocumentHandler
	service *journal.Service
}

// NewJournalHandler creates a new journal voucher handler.
func NewJournalHandler(base *DocumentHandler, service *journal.Service) *JournalHandler {
	return &JournalHandler{DocumentHandler: base, service: service}
}

// Create handles POST /document/journal-voucher
func (h *JournalHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateJournalVoucherRequest
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

// Update handles PUT /document/journal-voucher/:id
func (h *JournalHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalVoucherRequest
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

// Get handles GET /document/journal-voucher/:id
func (h *JournalHandler) Get(c *gin.Context) {
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

// List handles GET /document/journal-voucher
func (h *JournalHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := journal.ListFilter{ListFilter: h.ParseDocFilter(c)}
	filter.VoucherTypeID = h.QueryID(c, "voucherTypeId")
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

// Delete handles DELETE /document/journal-voucher/:id
func (h *JournalHandler) Delete(c *gin.Context) {
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

// Recover handles POST /document/journal-voucher/:id/recover.
// Unposting deactivated the stored entry set, so the caller resupplies it.
func (h *JournalHandler) Recover(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.RecoverJournalVoucherRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Recover(ctx, docID, req.ToEntryInputs()); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "document recovered")
}

// RegisterRoutes registers journal voucher routes.
func (h *JournalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/recover", h.Recover)
}
