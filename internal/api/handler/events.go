package handler

import (
	"net/http"

	"github.com/bprisby/arcade-backend-go/internal/realtime"
)

// EventsHandler serves the SSE subscription endpoint
type EventsHandler struct {
	hub         *realtime.Hub
	broadcaster *realtime.Broadcaster
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *realtime.Hub, broadcaster *realtime.Broadcaster) *EventsHandler {
	return &EventsHandler{hub: hub, broadcaster: broadcaster}
}

// Subscribe handles GET /events. The connection stays open until the client
// disconnects; current catalog and stats state is replayed on connect.
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	realtime.ServeSSE(w, r, h.hub, func() {
		h.broadcaster.SyncSubscriber(r.Context())
	})
}
