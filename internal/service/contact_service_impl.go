package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
	hub  *events.Hub
}

// NewContactService creates a ContactService backed by the given repository.
// Writes are announced on hub.
func NewContactService(repo repository.ContactRepository, hub *events.Hub) ContactService {
	return &contactServiceImpl{repo: repo, hub: hub}
}

// Submit stores a new contact submission. It sets the status to "new" and
// populates CreatedAt/UpdatedAt timestamps before persisting.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	now := time.Now().UTC()
	sub.Status = model.ContactStatusNew
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if err := s.repo.Save(ctx, sub); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeContactCreated, sub))
	return nil
}

// List returns contact submissions according to the given filter/pagination
// options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus changes the status of a contact submission. The status must
// belong to the contact store's native vocabulary; the unified inbox depends
// on stores never holding out-of-vocabulary values.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidContactStatus(status) {
		return fmt.Errorf("invalid contact status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeContactStatusChanged, map[string]string{
		"id":     id,
		"status": status,
	}))
	return nil
}
