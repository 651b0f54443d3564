package handler

import (
	"strconv"

	"github.com/Bhatia06/MEWallet/internal/adapter/http/dto"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"
	"github.com/Bhatia06/MEWallet/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultTxLimit = 50

// LinkHandler handles balance-link and ledger endpoints.
type LinkHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(ledgerSvc ports.LedgerService) *LinkHandler {
	return &LinkHandler{ledgerSvc: ledgerSvc}
}

// Create handles POST /api/v1/link/create. Merchant only; the merchant side
// of the link is the caller.
func (h *LinkHandler) Create(c *gin.Context) {
	merchantID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	link, err := h.ledgerSvc.CreateLink(c.Request.Context(), merchantID, req.UserID, req.PIN, req.InitialBalance)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromLink(link))
}

// AddBalance handles POST /api/v1/link/add-balance.
func (h *LinkHandler) AddBalance(c *gin.Context) {
	req, ok := h.bindMutation(c)
	if !ok {
		return
	}

	tx, err := h.ledgerSvc.AddBalance(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransaction(tx))
}

// Purchase handles POST /api/v1/link/purchase.
func (h *LinkHandler) Purchase(c *gin.Context) {
	req, ok := h.bindMutation(c)
	if !ok {
		return
	}

	tx, err := h.ledgerSvc.Purchase(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransaction(tx))
}

// Delink handles POST /api/v1/link/delink. Any remaining balance is
// forfeited.
func (h *LinkHandler) Delink(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.DelinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if caller != req.MerchantID && caller != req.UserID {
		response.Error(c, apperror.ErrForbidden())
		return
	}

	if err := h.ledgerSvc.Delink(c.Request.Context(), req.MerchantID, req.UserID, req.PIN); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"delinked": true})
}

// GetBalance handles GET /api/v1/link/balance/:merchant_id/:user_id.
func (h *LinkHandler) GetBalance(c *gin.Context) {
	merchantID, userID, ok := h.pairParams(c)
	if !ok {
		return
	}

	balance, err := h.ledgerSvc.GetBalance(c.Request.Context(), merchantID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		MerchantID: merchantID,
		UserID:     userID,
		Balance:    balance,
	})
}

// ListTransactions handles GET /api/v1/link/transactions/:merchant_id/:user_id.
func (h *LinkHandler) ListTransactions(c *gin.Context) {
	merchantID, userID, ok := h.pairParams(c)
	if !ok {
		return
	}

	txs, err := h.ledgerSvc.ListTransactions(c.Request.Context(), merchantID, userID, limitQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransactions(txs))
}

// ListUserTransactions handles GET /api/v1/link/user-transactions/:user_id.
// Ownership is enforced by middleware.
func (h *LinkHandler) ListUserTransactions(c *gin.Context) {
	txs, err := h.ledgerSvc.ListUserTransactions(c.Request.Context(), c.Param("user_id"), limitQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransactions(txs))
}

// ListLinkedUsers handles GET /api/v1/merchants/linked-users/:merchant_id.
func (h *LinkHandler) ListLinkedUsers(c *gin.Context) {
	links, err := h.ledgerSvc.ListLinkedUsers(c.Request.Context(), c.Param("merchant_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromLinks(links))
}

// ListLinkedMerchants handles GET /api/v1/users/linked-merchants/:user_id.
func (h *LinkHandler) ListLinkedMerchants(c *gin.Context) {
	links, err := h.ledgerSvc.ListLinkedMerchants(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromLinks(links))
}

// bindMutation parses a PIN-gated balance mutation and checks the caller is
// one side of the link. The PIN remains the real gate.
func (h *LinkHandler) bindMutation(c *gin.Context) (ports.BalanceMutation, bool) {
	caller, ok := callerID(c)
	if !ok {
		return ports.BalanceMutation{}, false
	}

	var req dto.BalanceMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return ports.BalanceMutation{}, false
	}
	if caller != req.MerchantID && caller != req.UserID {
		response.Error(c, apperror.ErrForbidden())
		return ports.BalanceMutation{}, false
	}

	return ports.BalanceMutation{
		MerchantID: req.MerchantID,
		UserID:     req.UserID,
		Amount:     req.Amount,
		PIN:        req.PIN,
	}, true
}

// pairParams extracts the link pair and checks the caller is one side of it.
func (h *LinkHandler) pairParams(c *gin.Context) (string, string, bool) {
	caller, ok := callerID(c)
	if !ok {
		return "", "", false
	}

	merchantID := c.Param("merchant_id")
	userID := c.Param("user_id")
	if caller != merchantID && caller != userID {
		response.Error(c, apperror.ErrForbidden())
		return "", "", false
	}
	return merchantID, userID, true
}

// limitQuery parses the optional ?limit= query parameter.
func limitQuery(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultTxLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultTxLimit
	}
	return n
}
