package handler

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/service"
	"github.com/prismworks/backend/pkg/auth"
)

// InboxHandler serves the unified admin inbox.
type InboxHandler struct {
	inboxService service.InboxService
}

// NewInboxHandler creates an InboxHandler with the given service.
func NewInboxHandler(inboxService service.InboxService) *InboxHandler {
	return &InboxHandler{inboxService: inboxService}
}

// inboxListResponse is the JSON response for GET /api/admin/inbox.
type inboxListResponse struct {
	Items []*model.InboxItem `json:"items"`
}

// List handles GET /api/admin/inbox.
// Optional query params: status (new/in_progress/converted/closed) and
// source (contact/request/quote/lead). Filtering and the createdAt-descending
// sort are presentation concerns applied here, on top of the aggregator's
// unordered output.
func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := auth.OperatorIDFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	statusFilter := r.URL.Query().Get("status")
	if statusFilter != "" && !validUnifiedStatus(statusFilter) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
		return
	}
	sourceFilter := r.URL.Query().Get("source")
	if sourceFilter != "" && !validInboxSource(sourceFilter) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_source"})
		return
	}

	items, err := h.inboxService.List(r.Context())
	if err != nil {
		// All-or-nothing: one failed store read fails the whole inbox.
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "inbox_failed"})
		return
	}

	filtered := items[:0:0]
	for _, it := range items {
		if statusFilter != "" && it.UnifiedStatus != model.UnifiedStatus(statusFilter) {
			continue
		}
		if sourceFilter != "" && it.Source != model.InboxSource(sourceFilter) {
			continue
		}
		filtered = append(filtered, it)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	if filtered == nil {
		filtered = []*model.InboxItem{}
	}

	_ = json.NewEncoder(w).Encode(inboxListResponse{Items: filtered})
}

func validUnifiedStatus(s string) bool {
	switch model.UnifiedStatus(s) {
	case model.UnifiedNew, model.UnifiedInProgress, model.UnifiedConverted, model.UnifiedClosed:
		return true
	}
	return false
}

func validInboxSource(s string) bool {
	switch model.InboxSource(s) {
	case model.SourceContact, model.SourceRequest, model.SourceQuote, model.SourceLead:
		return true
	}
	return false
}
