package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
	wsSendBuffer = 256
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsChannel adapts a websocket connection to the hub's channel contract. Send
// only enqueues; the write pump owns the connection.
type wsChannel struct {
	send chan []byte
}

func (ch *wsChannel) Send(payload []byte) error {
	select {
	case ch.send <- payload:
		return nil
	default:
		return websocket.ErrCloseSent
	}
}

// WSHandler upgrades connections and wires them into the notification hub.
type WSHandler struct {
	hub      *notify.Hub
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub *notify.Hub, tokenSvc ports.TokenService, log zerolog.Logger) *WSHandler {
	return &WSHandler{hub: hub, tokenSvc: tokenSvc, log: log}
}

// Connect handles GET /ws/connect/:role/:id. The token rides a query
// parameter because browsers cannot set headers on websocket upgrades; it
// must match both the role and identity in the path.
func (h *WSHandler) Connect(c *gin.Context) {
	role := domain.Role(c.Param("role"))
	identity := c.Param("id")
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	claims, err := h.tokenSvc.Validate(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if claims.Subject != identity || claims.Role != role {
		c.JSON(http.StatusForbidden, gin.H{"error": "token does not match connection identity"})
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("identity", identity).Msg("websocket upgrade failed")
		return
	}

	ch := &wsChannel{send: make(chan []byte, wsSendBuffer)}
	h.hub.Register(identity, role, ch)
	h.log.Info().Str("identity", identity).Str("role", string(role)).Msg("websocket connected")

	// Greet so the client knows the channel is live.
	if greeting, err := json.Marshal(domain.Event{Event: domain.EventConnected}); err == nil {
		ch.send <- greeting
	}

	go h.writePump(conn, ch)
	h.readPump(conn, ch, identity, role)
}

// writePump copies hub payloads onto the wire and keeps the connection alive
// with pings. It exits when the send channel closes or a write fails.
func (h *WSHandler) writePump(conn *websocket.Conn, ch *wsChannel) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case payload, ok := <-ch.send:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection until the client goes away, then tears the
// channel out of the hub. The push channel is one-way; inbound frames are
// discarded.
func (h *WSHandler) readPump(conn *websocket.Conn, ch *wsChannel, identity string, role domain.Role) {
	defer func() {
		h.hub.Unregister(identity, role, ch)
		conn.Close()
		h.log.Info().Str("identity", identity).Str("role", string(role)).Msg("websocket disconnected")
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
