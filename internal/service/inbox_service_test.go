package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prismworks/backend/internal/model"
)

// ---------------------------------------------------------------------------
// fixtures
// ---------------------------------------------------------------------------

func fixedTime(day int) time.Time {
	return time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)
}

func inboxFixture() (*mockContactRepository, *mockRequestRepository, *mockQuoteRepository, *mockLeadRepository) {
	contacts := &mockContactRepository{
		listAllFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return []*model.ContactSubmission{
				{ID: "c1", Name: "Alice", Email: "alice@example.com", Status: "new", CreatedAt: fixedTime(1)},
				{ID: "c2", Name: "Bob", Email: "bob@example.com", Status: "replied", CreatedAt: fixedTime(2)},
			}, nil
		},
	}
	requests := &mockRequestRepository{
		listAllFunc: func(ctx context.Context) ([]*model.ProjectRequest, error) {
			return []*model.ProjectRequest{
				{ID: "r1", Name: "Carol", Email: "carol@example.com", Status: "quoted", CreatedAt: fixedTime(3)},
			}, nil
		},
	}
	quotes := &mockQuoteRepository{
		listAllFunc: func(ctx context.Context) ([]*model.QuoteRequest, error) {
			return []*model.QuoteRequest{
				{ID: "q1", Name: "Dave", Phone: "555-0100", Status: "closed", CreatedAt: fixedTime(4)},
			}, nil
		},
	}
	leads := &mockLeadRepository{
		listAllFunc: func(ctx context.Context) ([]*model.Lead, error) {
			return []*model.Lead{
				{ID: "l1", Name: "Erin", Email: "erin@example.com", Status: "qualified", CreatedAt: fixedTime(5)},
			}, nil
		},
	}
	return contacts, requests, quotes, leads
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

// TestInboxService_List_Completeness: every record in every store shows up
// exactly once, with its source tag.
func TestInboxService_List_Completeness(t *testing.T) {
	svc := NewInboxService(inboxFixture())

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}

	seen := map[string]model.InboxSource{}
	for _, it := range items {
		key := string(it.Source) + "/" + it.ID
		if _, dup := seen[key]; dup {
			t.Errorf("item %s appears more than once", key)
		}
		seen[key] = it.Source
	}
	for _, key := range []string{"contact/c1", "contact/c2", "request/r1", "quote/q1", "lead/l1"} {
		if _, ok := seen[key]; !ok {
			t.Errorf("expected item %s in inbox", key)
		}
	}
}

func TestInboxService_List_UnifiedStatuses(t *testing.T) {
	svc := NewInboxService(inboxFixture())

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]model.UnifiedStatus{
		"c1": model.UnifiedNew,
		"c2": model.UnifiedConverted,
		"r1": model.UnifiedInProgress,
		"q1": model.UnifiedClosed,
		"l1": model.UnifiedInProgress,
	}
	for _, it := range items {
		if got := it.UnifiedStatus; got != want[it.ID] {
			t.Errorf("item %s: unified status = %s, want %s", it.ID, got, want[it.ID])
		}
	}
}

// TestInboxService_List_CarriesSourceData: each item keeps the backing
// record for detail rendering.
func TestInboxService_List_CarriesSourceData(t *testing.T) {
	svc := NewInboxService(inboxFixture())

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, it := range items {
		if it.SourceData == nil {
			t.Errorf("item %s/%s: missing source data", it.Source, it.ID)
		}
	}
	for _, it := range items {
		if it.Source != model.SourceQuote {
			continue
		}
		q, ok := it.SourceData.(*model.QuoteRequest)
		if !ok {
			t.Fatalf("quote item carries %T, want *model.QuoteRequest", it.SourceData)
		}
		if q.Phone != "555-0100" {
			t.Errorf("quote source data lost the phone field: %q", q.Phone)
		}
	}
}

// TestInboxService_List_NoDeduplication: the same person in two stores
// yields two items.
func TestInboxService_List_NoDeduplication(t *testing.T) {
	contacts := &mockContactRepository{
		listAllFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return []*model.ContactSubmission{
				{ID: "c1", Name: "Alice", Email: "alice@example.com", Status: "new", CreatedAt: fixedTime(1)},
			}, nil
		},
	}
	leads := &mockLeadRepository{
		listAllFunc: func(ctx context.Context) ([]*model.Lead, error) {
			return []*model.Lead{
				{ID: "l1", Name: "Alice", Email: "alice@example.com", Status: "new", CreatedAt: fixedTime(2)},
			}, nil
		},
	}
	svc := NewInboxService(contacts, &mockRequestRepository{}, &mockQuoteRepository{}, leads)

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items for the same email across stores, got %d", len(items))
	}
}

func TestInboxService_List_EmptyStores(t *testing.T) {
	svc := NewInboxService(&mockContactRepository{}, &mockRequestRepository{}, &mockQuoteRepository{}, &mockLeadRepository{})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected empty inbox, got error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected 0 items, got %d", len(items))
	}
}

// ---------------------------------------------------------------------------
// failure paths — all-or-nothing
// ---------------------------------------------------------------------------

func TestInboxService_List_StoreReadFailure(t *testing.T) {
	contacts, requests, _, leads := inboxFixture()
	quotes := &mockQuoteRepository{
		listAllFunc: func(ctx context.Context) ([]*model.QuoteRequest, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewInboxService(contacts, requests, quotes, leads)

	items, err := svc.List(context.Background())
	if err == nil {
		t.Fatal("expected error when one store read fails, got nil")
	}
	if items != nil {
		t.Errorf("expected no partial result, got %d items", len(items))
	}
	if !strings.Contains(err.Error(), "quote") {
		t.Errorf("error should name the failing store, got: %v", err)
	}
}

func TestInboxService_List_UnmappedStatusFails(t *testing.T) {
	contacts, requests, quotes, _ := inboxFixture()
	leads := &mockLeadRepository{
		listAllFunc: func(ctx context.Context) ([]*model.Lead, error) {
			return []*model.Lead{
				{ID: "l-bad", Name: "Mallory", Email: "m@example.com", Status: "zombie", CreatedAt: fixedTime(1)},
			}, nil
		},
	}
	svc := NewInboxService(contacts, requests, quotes, leads)

	items, err := svc.List(context.Background())
	if err == nil {
		t.Fatal("expected error for out-of-vocabulary status, got nil")
	}
	if items != nil {
		t.Errorf("expected no partial result, got %d items", len(items))
	}
	if !strings.Contains(err.Error(), "zombie") {
		t.Errorf("error should name the offending status, got: %v", err)
	}
}
