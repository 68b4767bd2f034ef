package repository

import (
	"context"

	"github.com/prismworks/backend/internal/model"
)

// RequestRepository defines the persistence interface for project requests.
type RequestRepository interface {
	Save(ctx context.Context, req *model.ProjectRequest) error
	FindByID(ctx context.Context, id string) (*model.ProjectRequest, error)
	List(ctx context.Context, opts model.RequestListOptions) ([]*model.ProjectRequest, error)
	ListAll(ctx context.Context) ([]*model.ProjectRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
