package domain

// Event names delivered over the push channel.
const (
	EventConnected        = "connected"
	EventPaymentReceived  = "payment_received"
	EventBalanceAdded     = "balance_added"
	EventPaymentRequested = "payment_requested"
	EventBalanceUpdated   = "balance_updated"
	EventPaymentReminder  = "payment_reminder"
)

// Event is the wire shape of a fanout message.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}
