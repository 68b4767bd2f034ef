package model

import "time"

// Lead represents a manually-entered sales lead. Leads are created by
// operators in the admin screens, not by any public form.
type Lead struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Company         string     `json:"company,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Source          string     `json:"source"` // free text: "referral", "event", ...
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"` // "new" | "contacted" | "qualified" | "converted" | "lost"
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Native lead statuses.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// ValidLeadStatus reports whether s is a known lead status.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// LeadListOptions carries filter and pagination parameters for listing leads.
type LeadListOptions struct {
	Status string
	Limit  int
	Offset int
}
