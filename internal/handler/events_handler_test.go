package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prismworks/backend/internal/events"
)

func TestEventsHandler_Stream_Unauthorized(t *testing.T) {
	h := NewEventsHandler(events.NewHub())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/events", nil)
	rec := httptest.NewRecorder()
	h.Stream(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without operator context, got %d", rec.Code)
	}
}

func TestEventsHandler_Stream_WritesSSEFrames(t *testing.T) {
	hub := events.NewHub()
	h := NewEventsHandler(hub)

	ctx, cancel := context.WithCancel(context.Background())
	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/admin/events", nil).WithContext(ctx))
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Stream(rec, req)
		close(done)
	}()

	// Give the handler a moment to subscribe, then publish and hang up.
	time.Sleep(50 * time.Millisecond)
	hub.Publish(events.New(events.TypeLeadCreated, map[string]string{"id": "l1"}))
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not exit after the client went away")
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("expected text/event-stream, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "data: ") {
		t.Fatalf("expected an SSE data frame, got %q", body)
	}
	if !strings.Contains(body, events.TypeLeadCreated) {
		t.Errorf("expected the published event in the stream, got %q", body)
	}
}
