package service

import (
	"context"

	"github.com/prismworks/backend/internal/model"
)

// RequestService defines the business logic for "start a project" requests.
type RequestService interface {
	// Submit stores a new project request. The req.ID and timestamps will
	// be populated by the implementation.
	Submit(ctx context.Context, req *model.ProjectRequest) error

	// List returns project requests according to the given options.
	List(ctx context.Context, opts model.RequestListOptions) ([]*model.ProjectRequest, error)

	// UpdateStatus moves a request to another native status.
	UpdateStatus(ctx context.Context, id, status string) error
}
