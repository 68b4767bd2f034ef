package service

import (
	"context"
	"testing"

	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockProjectRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockProjectRepository struct {
	saveFunc         func(ctx context.Context, p *model.Project) error
	findByIDFunc     func(ctx context.Context, id string) (*model.Project, error)
	listFunc         func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	listAllFunc      func(ctx context.Context) ([]*model.Project, error)
	updateFunc       func(ctx context.Context, p *model.Project) error
	updateStatusFunc func(ctx context.Context, id, status string) error
}

func (m *mockProjectRepository) Save(ctx context.Context, p *model.Project) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListAll(ctx context.Context) ([]*model.Project, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestProjectService_Create_DefaultsToPlanning(t *testing.T) {
	var saved *model.Project
	mock := &mockProjectRepository{
		saveFunc: func(ctx context.Context, p *model.Project) error {
			saved = p
			return nil
		},
	}
	svc := NewProjectService(mock, events.NewHub())

	p := &model.Project{Name: "Site relaunch", ClientName: "Acme", ClientEmail: "ops@acme.com"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Status != model.ProjectStatusPlanning {
		t.Errorf("expected default status=planning, got %q", saved.Status)
	}
}

func TestProjectService_UpdateStatus(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{"active", false},
		{"delivered", false},
		{"new", true}, // submission vocabulary, not a project stage
		{"", true},
	}

	for _, tt := range tests {
		svc := NewProjectService(&mockProjectRepository{}, events.NewHub())
		err := svc.UpdateStatus(context.Background(), "p1", tt.status)
		if tt.wantErr && err == nil {
			t.Errorf("status %q: expected error, got nil", tt.status)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("status %q: unexpected error: %v", tt.status, err)
		}
	}
}
