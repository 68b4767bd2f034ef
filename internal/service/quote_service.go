package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/repository"
)

// QuoteService defines the business logic for quick-quote submissions.
type QuoteService interface {
	Submit(ctx context.Context, q *model.QuoteRequest) error
	List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type quoteServiceImpl struct {
	repo repository.QuoteRepository
	hub  *events.Hub
}

// NewQuoteService creates a QuoteService backed by the given repository.
func NewQuoteService(repo repository.QuoteRepository, hub *events.Hub) QuoteService {
	return &quoteServiceImpl{repo: repo, hub: hub}
}

// Submit stores a new quote request with status "new" and fresh timestamps.
func (s *quoteServiceImpl) Submit(ctx context.Context, q *model.QuoteRequest) error {
	now := time.Now().UTC()
	q.Status = model.QuoteStatusNew
	q.CreatedAt = now
	q.UpdatedAt = now
	if err := s.repo.Save(ctx, q); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeQuoteCreated, q))
	return nil
}

func (s *quoteServiceImpl) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus changes the status of a quote request after validating it
// against the quote store's native vocabulary.
func (s *quoteServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidQuoteStatus(status) {
		return fmt.Errorf("invalid quote status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeQuoteStatusChanged, map[string]string{
		"id":     id,
		"status": status,
	}))
	return nil
}
