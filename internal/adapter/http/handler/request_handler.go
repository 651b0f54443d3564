package handler

import (
	"strconv"

	"github.com/Bhatia06/MEWallet/internal/adapter/http/dto"
	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"
	"github.com/Bhatia06/MEWallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles the pending-request workflow endpoints.
type RequestHandler struct {
	workflowSvc ports.WorkflowService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(workflowSvc ports.WorkflowService) *RequestHandler {
	return &RequestHandler{workflowSvc: workflowSvc}
}

// CreateLinkRequest handles POST /api/v1/link-requests/create. User only;
// the user side is the caller.
func (h *RequestHandler) CreateLinkRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateLinkWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	created, err := h.workflowSvc.CreateLinkRequest(c.Request.Context(), req.MerchantID, userID, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromRequest(created))
}

// CreateBalanceRequest handles POST /api/v1/balance-requests/create.
func (h *RequestHandler) CreateBalanceRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateBalanceWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	created, err := h.workflowSvc.CreateBalanceRequest(c.Request.Context(), req.MerchantID, userID, req.Amount, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromRequest(created))
}

// CreatePayRequest handles POST /api/v1/pay-requests/create. Merchant only;
// the merchant side is the caller.
func (h *RequestHandler) CreatePayRequest(c *gin.Context) {
	merchantID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreatePayWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	created, err := h.workflowSvc.CreatePayRequest(c.Request.Context(), merchantID, req.UserID, req.Amount, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromRequest(created))
}

// AcceptLinkRequest handles POST /api/v1/link-requests/accept/:id.
func (h *RequestHandler) AcceptLinkRequest(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.workflowSvc.AcceptLinkRequest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"accepted": true})
}

// AcceptBalanceRequest handles POST /api/v1/balance-requests/accept/:id.
func (h *RequestHandler) AcceptBalanceRequest(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	tx, err := h.workflowSvc.AcceptBalanceRequest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransaction(tx))
}

// AcceptPayRequest handles POST /api/v1/pay-requests/accept. The accepting
// user re-enters the link PIN; the service verifies both caller and PIN.
func (h *RequestHandler) AcceptPayRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.AcceptPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	tx, err := h.workflowSvc.AcceptPayRequest(c.Request.Context(), req.RequestID, userID, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransaction(tx))
}

// RejectLinkRequest handles POST /api/v1/link-requests/reject/:id.
func (h *RequestHandler) RejectLinkRequest(c *gin.Context) {
	h.reject(c, domain.RequestKindLink)
}

// RejectBalanceRequest handles POST /api/v1/balance-requests/reject/:id.
func (h *RequestHandler) RejectBalanceRequest(c *gin.Context) {
	h.reject(c, domain.RequestKindBalance)
}

// RejectPayRequest handles POST /api/v1/pay-requests/reject/:id.
func (h *RequestHandler) RejectPayRequest(c *gin.Context) {
	h.reject(c, domain.RequestKindPay)
}

func (h *RequestHandler) reject(c *gin.Context, kind domain.RequestKind) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	rejected, err := h.workflowSvc.Reject(c.Request.Context(), kind, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromRequest(rejected))
}

// ListLinkRequests handles GET /api/v1/link-requests/merchant/:merchant_id.
func (h *RequestHandler) ListLinkRequests(c *gin.Context) {
	h.listPending(c, domain.RequestKindLink)
}

// ListBalanceRequests handles GET /api/v1/balance-requests/merchant/:merchant_id.
func (h *RequestHandler) ListBalanceRequests(c *gin.Context) {
	h.listPending(c, domain.RequestKindBalance)
}

func (h *RequestHandler) listPending(c *gin.Context, kind domain.RequestKind) {
	requests, err := h.workflowSvc.ListPendingForMerchant(c.Request.Context(), c.Param("merchant_id"), kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromRequests(requests))
}

// ListPayRequestsForUser handles GET /api/v1/pay-requests/user/:user_id.
func (h *RequestHandler) ListPayRequestsForUser(c *gin.Context) {
	requests, err := h.workflowSvc.ListPayRequestsForUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromRequests(requests))
}

// ListPayRequestsForMerchant handles GET /api/v1/pay-requests/merchant/:merchant_id.
func (h *RequestHandler) ListPayRequestsForMerchant(c *gin.Context) {
	requests, err := h.workflowSvc.ListPayRequestsForMerchant(c.Request.Context(), c.Param("merchant_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromRequests(requests))
}

// idParam parses the numeric :id path parameter.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperror.Validation("invalid id"))
		return 0, false
	}
	return id, true
}
