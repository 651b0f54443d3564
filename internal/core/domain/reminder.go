package domain

import "time"

// ReminderStatus is the lifecycle state of a reminder.
type ReminderStatus string

const (
	ReminderStatusActive    ReminderStatus = "active"
	ReminderStatusDismissed ReminderStatus = "dismissed"
	ReminderStatusExpired   ReminderStatus = "expired"
)

// Reminder is a merchant-authored nudge tied to a negative-balance link.
type Reminder struct {
	ID           int64          `json:"id"`
	MerchantID   string         `json:"merchant_id"`
	UserID       string         `json:"user_id"`
	LinkID       int64          `json:"link_id"`
	Message      string         `json:"message"`
	ReminderDate time.Time      `json:"reminder_date"`
	Status       ReminderStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ReminderUpdate carries an explicit optional-field partial update.
// Nil fields are left untouched by the store.
type ReminderUpdate struct {
	Message      *string
	ReminderDate *time.Time
	Status       *ReminderStatus
}

// Empty reports whether the update would change nothing.
func (u ReminderUpdate) Empty() bool {
	return u.Message == nil && u.ReminderDate == nil && u.Status == nil
}
