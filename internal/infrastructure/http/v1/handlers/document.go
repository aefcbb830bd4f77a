package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/id"
	"bakehouse/internal/domain"
)

// DocumentHandler carries helpers shared by all document handlers.
// Documents are not generic like catalogs: each type has its own posting
// semantics and extra routes, so the per-type handlers stay explicit.
type DocumentHandler struct {
	*BaseHandler
}

// NewDocumentHandler creates the shared document handler base.
func NewDocumentHandler(base *BaseHandler) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base}
}

// ParseIDParam parses the :id path parameter. Reports the error on the
// context when invalid.
func (h *DocumentHandler) ParseIDParam(c *gin.Context) (id.ID, bool) {
	parsed, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return id.Nil(), false
	}
	return parsed, true
}

// ParseDocFilter extracts the common document list filter from query params.
func (h *DocumentHandler) ParseDocFilter(c *gin.Context) domain.ListFilter {
	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"
	return filter
}

// QueryID parses an optional ID query parameter.
func (h *DocumentHandler) QueryID(c *gin.Context, key string) *id.ID {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	parsed, err := id.Parse(val)
	if err != nil {
		return nil
	}
	return &parsed
}

// QueryDate parses an optional RFC3339 date query parameter.
func (h *DocumentHandler) QueryDate(c *gin.Context, key string) *time.Time {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil
	}
	return &parsed
}
