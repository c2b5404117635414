package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const streamPingPeriod = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The dashboard is served from a different origin in development
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handlePriceStream pushes watched price snapshots over a websocket.
// A snapshot is sent on connect and again whenever the price refresher
// signals an update.
func (s *Server) handlePriceStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Stream: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	subscription := s.pricesService.SubscribeOnUpdate()
	defer subscription.Cancel()

	// Drain client frames so close and pong messages are processed
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	writeSnapshot := func() error {
		entries, _, err := s.pricesService.WatchedPrices(r.Context())
		if err != nil {
			log.Printf("Stream: snapshot fetch failed: %v", err)
			return nil
		}
		return conn.WriteJSON(map[string]interface{}{
			"type":   "prices",
			"prices": entries,
		})
	}

	if err := writeSnapshot(); err != nil {
		return
	}

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-clientGone:
			return
		case <-r.Context().Done():
			return
		case <-subscription.Chan():
			if err := writeSnapshot(); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}
