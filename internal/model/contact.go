package model

import "time"

// ContactSubmission represents a message submitted via the public contact form.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "new" | "read" | "replied"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Native contact submission statuses.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// ValidContactStatus reports whether s is a known contact submission status.
func ValidContactStatus(s string) bool {
	return s == ContactStatusNew || s == ContactStatusRead || s == ContactStatusReplied
}

// ContactListOptions carries filter and pagination parameters for listing
// contact submissions.
type ContactListOptions struct {
	// Status filters by native status: "", "all", "new", "read", "replied".
	// Empty string and "all" return all submissions.
	Status string
	Limit  int
	Offset int
}
