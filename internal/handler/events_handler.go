package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/pkg/auth"
)

// EventsHandler streams back-office events over SSE so admin screens can
// refresh the inbox without polling.
type EventsHandler struct {
	hub *events.Hub
}

// NewEventsHandler creates an EventsHandler on the given hub.
func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream handles GET /api/admin/events. It holds the connection open and
// writes one SSE data frame per published event until the client goes away.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.OperatorIDFromContext(r.Context()); !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "streaming_unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case evt, open := <-ch:
			if !open {
				return
			}
			b, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", b); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
