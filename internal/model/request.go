package model

import "time"

// ProjectRequest represents a submission from the public "start a project" form.
type ProjectRequest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name,omitempty"`
	ProjectTypes []string  `json:"project_types"`
	Description  string    `json:"description"`
	Timeline     string    `json:"timeline"`
	Budget       string    `json:"budget"`
	Status       string    `json:"status"` // "new" | "contacted" | "quoted" | "accepted" | "declined"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Native project request statuses.
const (
	RequestStatusNew       = "new"
	RequestStatusContacted = "contacted"
	RequestStatusQuoted    = "quoted"
	RequestStatusAccepted  = "accepted"
	RequestStatusDeclined  = "declined"
)

// ValidRequestStatus reports whether s is a known project request status.
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusNew, RequestStatusContacted, RequestStatusQuoted,
		RequestStatusAccepted, RequestStatusDeclined:
		return true
	}
	return false
}

// RequestListOptions carries filter and pagination parameters for listing
// project requests.
type RequestListOptions struct {
	// Status filters by native status; "" and "all" return everything.
	Status string
	Limit  int
	Offset int
}
