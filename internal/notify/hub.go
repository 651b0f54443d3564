package notify

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Bhatia06/MEWallet/internal/core/domain"

	"github.com/rs/zerolog"
)

// Channel is one live delivery path to a connected client. Send must be safe
// for concurrent use; a non-nil error marks the channel dead and the hub
// evicts it.
type Channel interface {
	Send(payload []byte) error
}

type key struct {
	identity string
	role     domain.Role
}

// Hub is the in-process notification fanout. An identity may hold several
// channels at once (multiple tabs, devices); events go to all of them.
// Delivery is best-effort: no queue, no retry, and zero connected channels
// means the event is dropped silently.
type Hub struct {
	mu       sync.RWMutex
	channels map[key]map[Channel]struct{}
	log      zerolog.Logger
}

// NewHub creates an empty Hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		channels: make(map[key]map[Channel]struct{}),
		log:      log,
	}
}

// Register adds a channel for an identity.
func (h *Hub) Register(identity string, role domain.Role, ch Channel) {
	k := key{identity: identity, role: role}

	h.mu.Lock()
	set, ok := h.channels[k]
	if !ok {
		set = make(map[Channel]struct{})
		h.channels[k] = set
	}
	set[ch] = struct{}{}
	n := len(set)
	h.mu.Unlock()

	h.log.Debug().
		Str("identity", identity).
		Str("role", string(role)).
		Int("channels", n).
		Msg("channel registered")
}

// Unregister removes a channel. Unknown channels are ignored.
func (h *Hub) Unregister(identity string, role domain.Role, ch Channel) {
	k := key{identity: identity, role: role}

	h.mu.Lock()
	if set, ok := h.channels[k]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(h.channels, k)
		}
	}
	h.mu.Unlock()
}

// Notify delivers an event to every live channel of the identity. Channels
// whose Send fails are evicted; the remaining channels are still served.
func (h *Hub) Notify(ctx context.Context, identity string, role domain.Role, event domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("event", event.Event).Msg("marshal event")
		return
	}

	k := key{identity: identity, role: role}

	h.mu.RLock()
	set := h.channels[k]
	targets := make([]Channel, 0, len(set))
	for ch := range set {
		targets = append(targets, ch)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	var dead []Channel
	for _, ch := range targets {
		if err := ch.Send(payload); err != nil {
			h.log.Warn().
				Err(err).
				Str("identity", identity).
				Str("event", event.Event).
				Msg("channel send failed, evicting")
			dead = append(dead, ch)
		}
	}

	for _, ch := range dead {
		h.Unregister(identity, role, ch)
	}
}

// IsConnected reports whether the identity has at least one live channel.
func (h *Hub) IsConnected(identity string, role domain.Role) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[key{identity: identity, role: role}]) > 0
}
