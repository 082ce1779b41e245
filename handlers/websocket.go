package handlers

import (
	"encoding/json"
	"net/http"

	"rental-server/auth"
	"rental-server/entities"
	"rental-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// bookingEvent is pushed to a subscribed owner when one of their houses
// gets booked.
type bookingEvent struct {
	Type    string                `json:"type"`
	Booking *entities.BookedHouse `json:"booking"`
}

// WSHandler owns the booking-feed websocket flows.
type WSHandler struct {
	mgr    *ws.Manager
	secret string
}

func NewWSHandler(mgr *ws.Manager, secret string) *WSHandler {
	return &WSHandler{mgr: mgr, secret: secret}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleOwnerWS upgrades to websocket and keeps the owner subscribed until
// the connection drops.
// GET /ws/bookings?token=<token>
func (h *WSHandler) HandleOwnerWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "you are not Authorized"})
		return
	}

	claims, err := auth.ParseToken(h.secret, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}
	if claims.Role != "house-owner" {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized. Insufficient role."})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.mgr.Register(claims.UserID, conn)
	log.Info().Str("owner", claims.UserID).Msg("owner subscribed to booking feed")

	defer func() {
		h.mgr.Unregister(claims.UserID)
		log.Info().Str("owner", claims.UserID).Msg("owner unsubscribed from booking feed")
	}()

	// Owners only receive events; drain incoming frames until the peer
	// goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("owner", claims.UserID).Msg("booking feed read error")
			}
			return
		}
	}
}

// BookingCreated pushes a booking event to the owning house-owner.
// Best-effort: a disconnected owner just misses the event.
func (h *WSHandler) BookingCreated(ownerID string, booking *entities.BookedHouse) {
	payload, err := json.Marshal(bookingEvent{Type: "booking_created", Booking: booking})
	if err != nil {
		return
	}
	if err := h.mgr.Send(ownerID, payload); err == nil {
		log.Debug().Str("owner", ownerID).Msg("booking event delivered")
	}
}
