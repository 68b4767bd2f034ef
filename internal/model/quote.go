package model

import "time"

// QuoteRequest represents a submission from the public quick-quote widget.
// Unlike the longer project request form, phone is required and email is
// optional.
type QuoteRequest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	ServiceType  string    `json:"service_type"`
	IssueType    string    `json:"issue_type"`
	PropertyType string    `json:"property_type"`
	ZipCode      string    `json:"zip_code"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"` // "new" | "contacted" | "quoted" | "closed"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Native quote request statuses.
const (
	QuoteStatusNew       = "new"
	QuoteStatusContacted = "contacted"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusClosed    = "closed"
)

// ValidQuoteStatus reports whether s is a known quote request status.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusNew, QuoteStatusContacted, QuoteStatusQuoted, QuoteStatusClosed:
		return true
	}
	return false
}

// QuoteListOptions carries filter and pagination parameters for listing
// quote requests.
type QuoteListOptions struct {
	Status string
	Limit  int
	Offset int
}
