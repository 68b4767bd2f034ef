package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is one back-office notification, serialized as-is onto the SSE
// stream consumed by admin screens.
type Event struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	At   time.Time       `json:"at"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Event types published by the write paths.
const (
	TypeContactCreated       = "contact.created"
	TypeContactStatusChanged = "contact.status_changed"
	TypeRequestCreated       = "request.created"
	TypeRequestStatusChanged = "request.status_changed"
	TypeQuoteCreated         = "quote.created"
	TypeQuoteStatusChanged   = "quote.status_changed"
	TypeLeadCreated          = "lead.created"
	TypeLeadUpdated          = "lead.updated"
	TypeLeadStatusChanged    = "lead.status_changed"
	TypeLeadDeleted          = "lead.deleted"
	TypeProjectCreated       = "project.created"
	TypeProjectStatusChanged = "project.status_changed"
)

// New builds an Event of the given type with data marshaled to JSON.
// A data value that fails to marshal is carried as an empty payload rather
// than failing the write path that publishes it.
func New(typ string, data any) Event {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	return Event{
		ID:   uuid.NewString(),
		Type: typ,
		At:   time.Now().UTC(),
		Data: raw,
	}
}
