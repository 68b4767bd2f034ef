package model

import "time"

// ClientSummary is the per-email consolidation of every record that shares
// one email address across projects, leads, project requests, and contact
// submissions. Like InboxItem it is derived on read and never stored.
//
// Identity is exact string equality on the raw email — no case folding,
// no alias handling. Records with an empty email cannot be attributed to a
// client and are skipped by the consolidator.
type ClientSummary struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`

	// FirstSeenAt is the earliest CreatedAt over all merged records;
	// LastActivityAt the latest activity timestamp (UpdatedAt, or
	// LastContactedAt for leads when later).
	FirstSeenAt    time.Time `json:"first_seen_at"`
	LastActivityAt time.Time `json:"last_activity_at"`

	ProjectIDs []string `json:"project_ids"`
	LeadIDs    []string `json:"lead_ids"`
	RequestIDs []string `json:"request_ids"`
	ContactIDs []string `json:"contact_ids"`
}
