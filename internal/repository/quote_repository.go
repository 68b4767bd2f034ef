package repository

import (
	"context"

	"github.com/prismworks/backend/internal/model"
)

// QuoteRepository defines the persistence interface for quote requests.
type QuoteRepository interface {
	Save(ctx context.Context, q *model.QuoteRequest) error
	FindByID(ctx context.Context, id string) (*model.QuoteRequest, error)
	List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error)
	ListAll(ctx context.Context) ([]*model.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
