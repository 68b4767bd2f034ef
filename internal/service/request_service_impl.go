package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/repository"
)

// requestServiceImpl is the production implementation of RequestService.
type requestServiceImpl struct {
	repo repository.RequestRepository
	hub  *events.Hub
}

// NewRequestService creates a RequestService backed by the given repository.
func NewRequestService(repo repository.RequestRepository, hub *events.Hub) RequestService {
	return &requestServiceImpl{repo: repo, hub: hub}
}

// Submit stores a new project request with status "new" and fresh timestamps.
func (s *requestServiceImpl) Submit(ctx context.Context, req *model.ProjectRequest) error {
	now := time.Now().UTC()
	req.Status = model.RequestStatusNew
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.ProjectTypes == nil {
		req.ProjectTypes = []string{}
	}
	if err := s.repo.Save(ctx, req); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeRequestCreated, req))
	return nil
}

// List returns project requests according to the given options.
func (s *requestServiceImpl) List(ctx context.Context, opts model.RequestListOptions) ([]*model.ProjectRequest, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus changes the status of a project request after validating it
// against the request store's native vocabulary.
func (s *requestServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidRequestStatus(status) {
		return fmt.Errorf("invalid request status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeRequestStatusChanged, map[string]string{
		"id":     id,
		"status": status,
	}))
	return nil
}
