package realtime

import (
	"net/http"
	"time"
)

const (
	// Time between keepalive pings
	pingPeriod = 30 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 64
)

// Client represents a connected realtime subscriber
type Client struct {
	hub         *Hub
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a new subscriber for the hub
func NewClient(hub *Hub) *Client {
	return &Client{
		hub:         hub,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// ServeSSE handles an SSE connection until the client disconnects or the
// hub shuts down. onConnect runs after registration so a fresh subscriber
// can be sent the current state before the first mutation arrives.
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub, onConnect func()) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	client := NewClient(hub)
	hub.Register(client)

	defer func() {
		hub.Unregister(client)
	}()

	_, _ = w.Write([]byte("event: connected\ndata: {\"status\":\"connected\"}\n\n"))
	flusher.Flush()

	if onConnect != nil {
		onConnect()
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				// Hub closed the channel
				return
			}
			if _, err := w.Write(message); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			// Client disconnected
			return
		}
	}
}
