package handlers

import (
	"log"
	"net/http"

	"bookstore-api/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventsHandler exposes the websocket change feed. The server only pushes;
// anything a client sends is discarded.
type EventsHandler struct {
	mgr *ws.Manager
}

func NewEventsHandler(mgr *ws.Manager) *EventsHandler {
	return &EventsHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleEventsWS upgrades to websocket and keeps the subscription alive
// until the client goes away. GET /ws
func (h *EventsHandler) HandleEventsWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Subscribe(conn)
	log.Printf("events subscriber connected (%d active)", h.mgr.Count())

	defer func() {
		h.mgr.Unsubscribe(conn)
		log.Printf("events subscriber disconnected (%d active)", h.mgr.Count())
	}()

	for {
		// Drain incoming frames; the read also surfaces close errors
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("events read error: %v", err)
			}
			return
		}
	}
}

// Subscribers reports the current subscriber count.
// GET /api/events/subscribers
func (h *EventsHandler) Subscribers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subscribers": h.mgr.Count()})
}
