package model

import "time"

// InboxSource identifies which store an inbox item was read from.
type InboxSource string

// Inbox sources, one per submission store.
const (
	SourceContact InboxSource = "contact"
	SourceRequest InboxSource = "request"
	SourceQuote   InboxSource = "quote"
	SourceLead    InboxSource = "lead"
)

// UnifiedStatus is the shared four-value status vocabulary every native
// store status collapses into.
type UnifiedStatus string

// Unified statuses. "new" means needs attention, "in_progress" actively
// worked, "converted" a successful terminal outcome, "closed" an
// unsuccessful or inactive terminal outcome.
const (
	UnifiedNew        UnifiedStatus = "new"
	UnifiedInProgress UnifiedStatus = "in_progress"
	UnifiedConverted  UnifiedStatus = "converted"
	UnifiedClosed     UnifiedStatus = "closed"
)

// InboxItem is the ephemeral projection of one source record used for the
// unified admin inbox. It is computed fresh on every read and never
// persisted; its identity is (Source, ID) of the backing record.
type InboxItem struct {
	ID            string        `json:"id"`
	Source        InboxSource   `json:"source"`
	Name          string        `json:"name"`
	Email         string        `json:"email,omitempty"`
	UnifiedStatus UnifiedStatus `json:"unified_status"`
	CreatedAt     time.Time     `json:"created_at"`
	// SourceData is the backing record exactly as read from its store,
	// kept for source-specific detail rendering.
	SourceData any `json:"source_data"`
}
