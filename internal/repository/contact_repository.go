package repository

import (
	"context"

	"github.com/prismworks/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact submissions.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
	FindByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
	// ListAll returns every submission, newest first, without pagination.
	// Used by the inbox and client read paths.
	ListAll(ctx context.Context) ([]*model.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
