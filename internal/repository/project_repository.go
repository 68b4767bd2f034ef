package repository

import (
	"context"

	"github.com/prismworks/backend/internal/model"
)

// ProjectRepository defines the persistence interface for client projects.
type ProjectRepository interface {
	Save(ctx context.Context, p *model.Project) error
	FindByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	ListAll(ctx context.Context) ([]*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	UpdateStatus(ctx context.Context, id, status string) error
}
