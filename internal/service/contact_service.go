package service

import (
	"context"

	"github.com/prismworks/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact submission. The sub.ID and timestamps
	// will be populated by the implementation.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// List returns contact submissions according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)

	// UpdateStatus moves a submission to another native status.
	UpdateStatus(ctx context.Context, id, status string) error
}
