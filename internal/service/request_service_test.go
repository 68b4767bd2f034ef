package service

import (
	"context"
	"testing"

	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockRequestRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockRequestRepository struct {
	saveFunc         func(ctx context.Context, req *model.ProjectRequest) error
	findByIDFunc     func(ctx context.Context, id string) (*model.ProjectRequest, error)
	listFunc         func(ctx context.Context, opts model.RequestListOptions) ([]*model.ProjectRequest, error)
	listAllFunc      func(ctx context.Context) ([]*model.ProjectRequest, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
}

func (m *mockRequestRepository) Save(ctx context.Context, req *model.ProjectRequest) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, id string) (*model.ProjectRequest, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, opts model.RequestListOptions) ([]*model.ProjectRequest, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockRequestRepository) ListAll(ctx context.Context) ([]*model.ProjectRequest, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestRequestService_Submit_SetsNewStatus(t *testing.T) {
	var saved *model.ProjectRequest
	mock := &mockRequestRepository{
		saveFunc: func(ctx context.Context, req *model.ProjectRequest) error {
			saved = req
			return nil
		},
	}
	svc := NewRequestService(mock, events.NewHub())

	req := &model.ProjectRequest{
		Name:        "Carol",
		Email:       "carol@example.com",
		Description: "New storefront site",
		Timeline:    "3 months",
		Budget:      "10k-20k",
	}
	if err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Status != model.RequestStatusNew {
		t.Errorf("expected status=new, got %q", saved.Status)
	}
}

// TestRequestService_Submit_NormalizesNilProjectTypes keeps the JSON
// representation an array, never null.
func TestRequestService_Submit_NormalizesNilProjectTypes(t *testing.T) {
	var saved *model.ProjectRequest
	mock := &mockRequestRepository{
		saveFunc: func(ctx context.Context, req *model.ProjectRequest) error {
			saved = req
			return nil
		},
	}
	svc := NewRequestService(mock, events.NewHub())

	req := &model.ProjectRequest{Name: "N", Email: "n@n.com", Description: "d", Timeline: "t", Budget: "b"}
	if err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ProjectTypes == nil {
		t.Error("expected ProjectTypes to be normalized to an empty slice")
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus tests
// ---------------------------------------------------------------------------

func TestRequestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{"contacted", false},
		{"accepted", false},
		{"declined", false},
		{"replied", true}, // contact vocabulary, not this store's
		{"", true},
	}

	for _, tt := range tests {
		called := false
		mock := &mockRequestRepository{
			updateStatusFunc: func(ctx context.Context, id, status string) error {
				called = true
				return nil
			},
		}
		svc := NewRequestService(mock, events.NewHub())

		err := svc.UpdateStatus(context.Background(), "r1", tt.status)
		if tt.wantErr && err == nil {
			t.Errorf("status %q: expected error, got nil", tt.status)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("status %q: unexpected error: %v", tt.status, err)
		}
		if tt.wantErr && called {
			t.Errorf("status %q: repository must not be touched", tt.status)
		}
	}
}
