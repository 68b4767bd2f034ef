package events

import (
	"encoding/json"
	"testing"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	hub.Publish(New(TypeLeadCreated, map[string]string{"id": "l1"}))

	for _, ch := range []chan Event{a, b} {
		select {
		case evt := <-ch:
			if evt.Type != TypeLeadCreated {
				t.Errorf("expected type %q, got %q", TypeLeadCreated, evt.Type)
			}
		default:
			t.Error("expected event delivered to subscriber")
		}
	}
}

func TestHub_UnsubscribedChannelReceivesNothing(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	hub.Unsubscribe(ch)

	// Publish after unsubscribe must not panic or deliver.
	hub.Publish(New(TypeContactCreated, nil))

	if _, open := <-ch; open {
		t.Error("expected channel closed after unsubscribe")
	}
}

// TestHub_SlowSubscriberDoesNotBlock: a full buffer drops events instead of
// stalling the publisher.
func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	for i := 0; i < 100; i++ {
		hub.Publish(New(TypeQuoteCreated, nil))
	}
	// If Publish blocked on the full buffer we would never get here.
	if len(ch) != cap(ch) {
		t.Errorf("expected buffer full at %d, got %d", cap(ch), len(ch))
	}
}

func TestNew_PopulatesEvent(t *testing.T) {
	evt := New(TypeProjectCreated, map[string]string{"id": "p1"})
	if evt.ID == "" {
		t.Error("expected a generated event ID")
	}
	if evt.At.IsZero() {
		t.Error("expected a timestamp")
	}
	var data map[string]string
	if err := json.Unmarshal(evt.Data, &data); err != nil {
		t.Fatalf("event data is not valid JSON: %v", err)
	}
	if data["id"] != "p1" {
		t.Errorf("expected payload id p1, got %q", data["id"])
	}
}

func TestNew_NilDataOmitted(t *testing.T) {
	evt := New(TypeLeadDeleted, nil)
	if evt.Data != nil {
		t.Errorf("expected empty payload, got %s", evt.Data)
	}
}
