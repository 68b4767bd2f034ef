package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/repository"
)

// LeadService defines the business logic for manually-entered sales leads.
type LeadService interface {
	// Create stores a new lead. The implementation assigns lead.ID and
	// timestamps, and defaults the status to "new" when unset.
	Create(ctx context.Context, lead *model.Lead) error
	GetByID(ctx context.Context, id string) (*model.Lead, error)
	List(ctx context.Context, opts model.LeadListOptions) ([]*model.Lead, error)
	Update(ctx context.Context, lead *model.Lead) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type leadServiceImpl struct {
	repo repository.LeadRepository
	hub  *events.Hub
}

// NewLeadService creates a LeadService backed by the given repository.
func NewLeadService(repo repository.LeadRepository, hub *events.Hub) LeadService {
	return &leadServiceImpl{repo: repo, hub: hub}
}

// Create stores a new lead. Leads are the only store whose IDs are assigned
// app-side; operators may create them while offline from Postgres-generated
// defaults, so a UUID is minted here.
func (s *leadServiceImpl) Create(ctx context.Context, lead *model.Lead) error {
	if lead.Status == "" {
		lead.Status = model.LeadStatusNew
	}
	if !model.ValidLeadStatus(lead.Status) {
		return fmt.Errorf("invalid lead status %q", lead.Status)
	}
	lead.ID = uuid.NewString()
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	if err := s.repo.Save(ctx, lead); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeLeadCreated, lead))
	return nil
}

func (s *leadServiceImpl) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *leadServiceImpl) List(ctx context.Context, opts model.LeadListOptions) ([]*model.Lead, error) {
	return s.repo.List(ctx, opts)
}

// Update rewrites a lead's mutable fields after validating its status.
func (s *leadServiceImpl) Update(ctx context.Context, lead *model.Lead) error {
	if !model.ValidLeadStatus(lead.Status) {
		return fmt.Errorf("invalid lead status %q", lead.Status)
	}
	if err := s.repo.Update(ctx, lead); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeLeadUpdated, lead))
	return nil
}

// UpdateStatus moves the lead through its pipeline after validating the
// target status.
func (s *leadServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidLeadStatus(status) {
		return fmt.Errorf("invalid lead status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeLeadStatusChanged, map[string]string{
		"id":     id,
		"status": status,
	}))
	return nil
}

// Delete removes a lead permanently.
func (s *leadServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeLeadDeleted, map[string]string{"id": id}))
	return nil
}
