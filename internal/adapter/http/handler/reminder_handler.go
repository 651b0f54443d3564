package handler

import (
	"github.com/Bhatia06/MEWallet/internal/adapter/http/dto"
	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"
	"github.com/Bhatia06/MEWallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReminderHandler handles payment reminder endpoints.
type ReminderHandler struct {
	reminderSvc ports.ReminderService
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderSvc ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderSvc: reminderSvc}
}

// Create handles POST /api/v1/reminders. Merchant only; the merchant side is
// the caller.
func (h *ReminderHandler) Create(c *gin.Context) {
	merchantID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	reminder, err := h.reminderSvc.Create(c.Request.Context(), ports.CreateReminder{
		MerchantID:   merchantID,
		UserID:       req.UserID,
		Message:      req.Message,
		ReminderDate: req.ReminderDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromReminder(reminder))
}

// Update handles PUT /api/v1/reminders/:id. Only the authoring merchant may
// update; omitted fields are left untouched.
func (h *ReminderHandler) Update(c *gin.Context) {
	merchantID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	upd := domain.ReminderUpdate{
		Message:      req.Message,
		ReminderDate: req.ReminderDate,
	}
	if err := h.reminderSvc.Update(c.Request.Context(), merchantID, id, upd); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"updated": true})
}

// Delete handles DELETE /api/v1/reminders/:id.
func (h *ReminderHandler) Delete(c *gin.Context) {
	merchantID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.reminderSvc.Delete(c.Request.Context(), merchantID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}

// Dismiss handles DELETE /api/v1/users/notifications/:id/dismiss. Only the
// targeted user may dismiss.
func (h *ReminderHandler) Dismiss(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.reminderSvc.Dismiss(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"dismissed": true})
}

// ListForUser handles GET /api/v1/users/notifications/:user_id. Ownership is
// enforced by middleware.
func (h *ReminderHandler) ListForUser(c *gin.Context) {
	reminders, err := h.reminderSvc.ListForUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromReminders(reminders))
}
