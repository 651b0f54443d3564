package domain

import "time"

// Link is the PIN-protected balance relationship between one merchant and one
// user. At most one link exists per (merchant_id, user_id) pair; the balance
// is held in the smallest currency unit and may go negative.
type Link struct {
	ID         int64     `json:"id"`
	MerchantID string    `json:"merchant_id"`
	UserID     string    `json:"user_id"`
	Balance    int64     `json:"balance"`
	PINHash    string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// InDebt reports whether the user owes the merchant.
func (l *Link) InDebt() bool {
	return l.Balance < 0
}
