package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/repository"
)

// ProjectService defines the business logic for client projects.
type ProjectService interface {
	Create(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	UpdateStatus(ctx context.Context, id, status string) error
}

type projectServiceImpl struct {
	repo repository.ProjectRepository
	hub  *events.Hub
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository, hub *events.Hub) ProjectService {
	return &projectServiceImpl{repo: repo, hub: hub}
}

// Create stores a new project. Status defaults to "planning" when unset.
func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	if p.Status == "" {
		p.Status = model.ProjectStatusPlanning
	}
	if !model.ValidProjectStatus(p.Status) {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.repo.Save(ctx, p); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeProjectCreated, p))
	return nil
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *projectServiceImpl) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	return s.repo.List(ctx, opts)
}

// Update rewrites a project's mutable fields after validating its status.
func (s *projectServiceImpl) Update(ctx context.Context, p *model.Project) error {
	if !model.ValidProjectStatus(p.Status) {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	return s.repo.Update(ctx, p)
}

// UpdateStatus moves a project to another lifecycle stage.
func (s *projectServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidProjectStatus(status) {
		return fmt.Errorf("invalid project status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.hub.Publish(events.New(events.TypeProjectStatusChanged, map[string]string{
		"id":     id,
		"status": status,
	}))
	return nil
}
