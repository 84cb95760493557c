package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
)

const (
	// writeWait bounds a single WebSocket write
	writeWait = 10 * time.Second

	// pongWait bounds how long a silent peer stays connected
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = 50 * time.Second
)

// handleWS upgrades the connection and bridges it to the event bus. The
// "room" query parameter selects the subscription scope; the admin room
// requires a valid admin token.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	room := eventbus.RoomBroadcast
	if r.URL.Query().Get("room") == string(eventbus.RoomAdmin) {
		if !h.adminTokenValid(r) {
			http.Error(w, "admin room requires a valid token", http.StatusUnauthorized)
			return
		}
		room = eventbus.RoomAdmin
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	sub := h.eventBus.Subscribe(room)

	go h.writeLoop(conn, sub)
	go h.readLoop(conn, sub)
}

// writeLoop pushes bus events to the peer and keeps the connection alive
// with pings
func (h *Handler) writeLoop(conn *websocket.Conn, sub *eventbus.Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case event, ok := <-sub.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop drains inbound frames until the peer goes away, then tears the
// subscription down. Clients send nothing meaningful; the socket is a
// one-way event feed.
func (h *Handler) readLoop(conn *websocket.Conn, sub *eventbus.Subscription) {
	defer func() {
		sub.Close()
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
