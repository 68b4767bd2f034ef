package model

import "time"

// Project represents an active client engagement. Projects back the client
// portal's status view and feed the client consolidation read path.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"` // "planning" | "active" | "review" | "delivered"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Project statuses.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusReview    = "review"
	ProjectStatusDelivered = "delivered"
)

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusReview, ProjectStatusDelivered:
		return true
	}
	return false
}

// ProjectListOptions carries filter and pagination parameters for listing
// projects.
type ProjectListOptions struct {
	Status string
	// ClientEmail filters to a single client's projects when non-empty.
	ClientEmail string
	Limit       int
	Offset      int
}
