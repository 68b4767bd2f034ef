package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prismworks/backend/internal/model"
)

type mockClientService struct {
	listFunc func(ctx context.Context) ([]*model.ClientSummary, error)
}

func (m *mockClientService) List(ctx context.Context) ([]*model.ClientSummary, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func TestClientHandler_List_Unauthorized(t *testing.T) {
	h := NewClientHandler(&mockClientService{})
	req := httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without operator context, got %d", rec.Code)
	}
}

func TestClientHandler_List_Success(t *testing.T) {
	h := NewClientHandler(&mockClientService{
		listFunc: func(ctx context.Context) ([]*model.ClientSummary, error) {
			return []*model.ClientSummary{
				{Email: "alice@example.com", Name: "Alice", ContactIDs: []string{"c1"}},
			}, nil
		},
	})
	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Clients []*model.ClientSummary `json:"clients"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Clients) != 1 || resp.Clients[0].Email != "alice@example.com" {
		t.Errorf("unexpected clients %+v", resp.Clients)
	}
}

func TestClientHandler_List_Failure(t *testing.T) {
	h := NewClientHandler(&mockClientService{
		listFunc: func(ctx context.Context) ([]*model.ClientSummary, error) {
			return nil, errors.New("read projects: timeout")
		},
	})
	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestClientHandler_List_EmptyIsArray(t *testing.T) {
	h := NewClientHandler(&mockClientService{})
	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/admin/clients", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.Contains(rec.Body.String(), `"clients":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}
