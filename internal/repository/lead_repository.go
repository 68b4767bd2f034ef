package repository

import (
	"context"

	"github.com/prismworks/backend/internal/model"
)

// LeadRepository defines the persistence interface for manually-entered leads.
type LeadRepository interface {
	Save(ctx context.Context, lead *model.Lead) error
	FindByID(ctx context.Context, id string) (*model.Lead, error)
	List(ctx context.Context, opts model.LeadListOptions) ([]*model.Lead, error)
	ListAll(ctx context.Context) ([]*model.Lead, error)
	Update(ctx context.Context, lead *model.Lead) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
