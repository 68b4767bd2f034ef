package service

import (
	"context"
	"testing"

	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockQuoteRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockQuoteRepository struct {
	saveFunc         func(ctx context.Context, q *model.QuoteRequest) error
	findByIDFunc     func(ctx context.Context, id string) (*model.QuoteRequest, error)
	listFunc         func(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error)
	listAllFunc      func(ctx context.Context) ([]*model.QuoteRequest, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
}

func (m *mockQuoteRepository) Save(ctx context.Context, q *model.QuoteRequest) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, q)
	}
	return nil
}

func (m *mockQuoteRepository) FindByID(ctx context.Context, id string) (*model.QuoteRequest, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockQuoteRepository) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockQuoteRepository) ListAll(ctx context.Context) ([]*model.QuoteRequest, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuoteRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestQuoteService_Submit_SetsNewStatus(t *testing.T) {
	var saved *model.QuoteRequest
	mock := &mockQuoteRepository{
		saveFunc: func(ctx context.Context, q *model.QuoteRequest) error {
			saved = q
			return nil
		},
	}
	svc := NewQuoteService(mock, events.NewHub())

	q := &model.QuoteRequest{
		Name:        "Dave",
		Phone:       "555-0100",
		ServiceType: "web",
	}
	if err := svc.Submit(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Status != model.QuoteStatusNew {
		t.Errorf("expected status=new, got %q", saved.Status)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated")
	}
}

func TestQuoteService_UpdateStatus_RejectsConverted(t *testing.T) {
	// The quote vocabulary ends at "closed"; there is no converted state.
	svc := NewQuoteService(&mockQuoteRepository{}, events.NewHub())
	if err := svc.UpdateStatus(context.Background(), "q1", "converted"); err == nil {
		t.Error("expected error for status outside the quote vocabulary")
	}
}

func TestQuoteService_UpdateStatus_Valid(t *testing.T) {
	var gotStatus string
	mock := &mockQuoteRepository{
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			gotStatus = status
			return nil
		},
	}
	svc := NewQuoteService(mock, events.NewHub())

	if err := svc.UpdateStatus(context.Background(), "q1", model.QuoteStatusClosed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStatus != "closed" {
		t.Errorf("expected status closed forwarded, got %q", gotStatus)
	}
}
