package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReminderServiceImpl implements ports.ReminderService. Reminders are
// merchant-authored and only attach to links the user owes money on.
type ReminderServiceImpl struct {
	reminderRepo ports.ReminderRepository
	linkRepo     ports.LinkRepository
	notifier     ports.Notifier
	log          zerolog.Logger
}

// NewReminderService creates a new ReminderServiceImpl.
func NewReminderService(
	reminderRepo ports.ReminderRepository,
	linkRepo ports.LinkRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *ReminderServiceImpl {
	return &ReminderServiceImpl{
		reminderRepo: reminderRepo,
		linkRepo:     linkRepo,
		notifier:     notifier,
		log:          log,
	}
}

// Create inserts an active reminder for a negative-balance link.
func (s *ReminderServiceImpl) Create(ctx context.Context, req ports.CreateReminder) (*domain.Reminder, error) {
	if !req.ReminderDate.After(time.Now()) {
		return nil, apperror.ErrReminderDatePast()
	}

	link, err := s.linkRepo.GetByPair(ctx, req.MerchantID, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get link: %w", err))
	}
	if link == nil {
		return nil, apperror.ErrNotFound("link")
	}
	if !link.InDebt() {
		return nil, apperror.ErrReminderNotEligible()
	}

	reminder := &domain.Reminder{
		MerchantID:   req.MerchantID,
		UserID:       req.UserID,
		LinkID:       link.ID,
		Message:      req.Message,
		ReminderDate: req.ReminderDate,
		Status:       domain.ReminderStatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create reminder: %w", err))
	}

	s.log.Info().
		Int64("reminder_id", reminder.ID).
		Str("merchant_id", req.MerchantID).
		Str("user_id", req.UserID).
		Msg("reminder created")

	s.notifier.Notify(ctx, req.UserID, domain.RoleUser, domain.Event{
		Event: domain.EventPaymentReminder,
		Data:  reminder,
	})

	return reminder, nil
}

// owned fetches a reminder and checks the caller against the given side.
func (s *ReminderServiceImpl) owned(ctx context.Context, id int64, callerID string, merchantSide bool) (*domain.Reminder, error) {
	reminder, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get reminder: %w", err))
	}
	if reminder == nil {
		return nil, apperror.ErrNotFound("reminder")
	}

	owner := reminder.UserID
	if merchantSide {
		owner = reminder.MerchantID
	}
	if owner != callerID {
		return nil, apperror.ErrForbidden()
	}
	return reminder, nil
}

// Update applies a partial update to a merchant's own reminder. A new date
// must still be in the future.
func (s *ReminderServiceImpl) Update(ctx context.Context, merchantID string, id int64, upd domain.ReminderUpdate) error {
	if upd.Empty() {
		return apperror.Validation("no fields to update")
	}
	if upd.ReminderDate != nil && !upd.ReminderDate.After(time.Now()) {
		return apperror.ErrReminderDatePast()
	}

	if _, err := s.owned(ctx, id, merchantID, true); err != nil {
		return err
	}

	if err := s.reminderRepo.Update(ctx, id, upd); err != nil {
		return apperror.InternalError(fmt.Errorf("update reminder: %w", err))
	}
	return nil
}

// Delete removes a merchant's own reminder.
func (s *ReminderServiceImpl) Delete(ctx context.Context, merchantID string, id int64) error {
	if _, err := s.owned(ctx, id, merchantID, true); err != nil {
		return err
	}

	if err := s.reminderRepo.Delete(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete reminder: %w", err))
	}
	return nil
}

// Dismiss marks a reminder dismissed on behalf of its user.
func (s *ReminderServiceImpl) Dismiss(ctx context.Context, userID string, id int64) error {
	if _, err := s.owned(ctx, id, userID, false); err != nil {
		return err
	}

	status := domain.ReminderStatusDismissed
	if err := s.reminderRepo.Update(ctx, id, domain.ReminderUpdate{Status: &status}); err != nil {
		return apperror.InternalError(fmt.Errorf("dismiss reminder: %w", err))
	}
	return nil
}

// ListForUser returns a user's active reminders ordered by date.
func (s *ReminderServiceImpl) ListForUser(ctx context.Context, userID string) ([]domain.Reminder, error) {
	reminders, err := s.reminderRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list reminders: %w", err))
	}
	return reminders, nil
}
