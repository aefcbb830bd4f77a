package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/id"
	"bakehouse/internal/domain/registers/ledger"
)

// LedgerHandler exposes accounting register reports.
type LedgerHandler struct {
	*DocumentHandler
	service *ledger.Service
}

// NewLedgerHandler creates a new accounting register handler.
func NewLedgerHandler(base *DocumentHandler, service *ledger.Service) *LedgerHandler {
	return &LedgerHandler{DocumentHandler: base, service: service}
}

// Statement handles GET /register/ledger/account/:id/statement - the
// chronological entry list for one account.
func (h *LedgerHandler) Statement(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	filter := ledger.EntryFilter{
		From:   h.QueryDate(c, "from"),
		To:     h.QueryDate(c, "to"),
		Limit:  h.ParseIntQuery(c, "limit", 100),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	entries, err := h.service.GetAccountStatement(ctx, accountID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": entries})
}

// Balance handles GET /register/ledger/account/:id/balance - the running
// debit-minus-credit balance as of a date.
func (h *LedgerHandler) Balance(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	asOf := time.Now().UTC()
	if parsed := h.QueryDate(c, "asOf"); parsed != nil {
		asOf = *parsed
	}

	balance, err := h.service.GetAccountBalance(ctx, accountID, asOf)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accountId": accountID.String(),
		"asOf":      asOf,
		"balance":   balance,
	})
}

// TrialBalance handles GET /register/ledger/trial-balance - per-account
// debit and credit totals for a period.
func (h *LedgerHandler) TrialBalance(c *gin.Context) {
	ctx := c.Request.Context()

	from := h.QueryDate(c, "from")
	to := h.QueryDate(c, "to")
	if from == nil || to == nil {
		h.Error(c, apperror.NewValidation("from and to are required"))
		return
	}

	rows, err := h.service.GetTrialBalance(ctx, *from, *to)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": rows, "from": from, "to": to})
}

// ByReference handles GET /register/ledger/reference/:id - the active
// posting written by one document.
func (h *LedgerHandler) ByReference(c *gin.Context) {
	ctx := c.Request.Context()

	refID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	posting, err := h.service.GetByReference(ctx, refID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if posting == nil {
		h.Error(c, apperror.NewNotFound("posting", refID.String()))
		return
	}

	c.JSON(http.StatusOK, posting)
}

// RegisterRoutes registers accounting register routes.
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/account/:id/statement", h.Statement)
	rg.GET("/account/:id/balance", h.Balance)
	rg.GET("/trial-balance", h.TrialBalance)
	rg.GET("/reference/:id", h.ByReference)
}
