package domain

import "time"

// RequestKind distinguishes the three request workflows sharing one shape.
type RequestKind string

const (
	RequestKindLink    RequestKind = "link"    // user proposes a new link
	RequestKindBalance RequestKind = "balance" // user asks the merchant to credit
	RequestKindPay     RequestKind = "pay"     // merchant proposes a debit
)

// Valid reports whether the kind is one of the three known workflows.
func (k RequestKind) Valid() bool {
	switch k {
	case RequestKindLink, RequestKindBalance, RequestKindPay:
		return true
	}
	return false
}

// RequestStatus is the workflow state. pending is initial; accepted and
// rejected are terminal and reached exactly once.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a proposal awaiting the counterparty's decision. At most one
// pending request of a given kind exists per (merchant_id, user_id) pair,
// enforced by a partial unique index at the store layer.
type Request struct {
	ID         int64       `json:"id"`
	Kind       RequestKind `json:"kind"`
	MerchantID string      `json:"merchant_id"`
	UserID     string      `json:"user_id"`

	// ProposedPIN is the plaintext PIN carried by link and balance requests.
	// It is a proposal payload, not a credential: the link's stored PINHash is
	// a separate value and the two are never compared to each other.
	ProposedPIN *string `json:"-"`

	Amount      *int64  `json:"amount,omitempty"`      // balance, pay
	Description *string `json:"description,omitempty"` // pay

	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	RespondedAt *time.Time    `json:"responded_at,omitempty"`
}

// IsPending reports whether the request can still be settled.
func (r *Request) IsPending() bool {
	return r.Status == RequestStatusPending
}
