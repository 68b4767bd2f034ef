package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/repository"
	"github.com/prismworks/backend/internal/service"
	"github.com/prismworks/backend/pkg/auth"
)

// QuoteHandler handles quick-quote widget submission and admin listing.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a QuoteHandler with the given service.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// quoteSubmitRequest is the expected JSON body for POST /api/quotes. The
// quick-quote widget collects a phone number instead of requiring email.
type quoteSubmitRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	ServiceType  string `json:"service_type"`
	IssueType    string `json:"issue_type"`
	PropertyType string `json:"property_type"`
	ZipCode      string `json:"zip_code"`
	Description  string `json:"description"`
}

// Submit handles POST /api/quotes.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req quoteSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	required := []struct{ val, code string }{
		{req.Name, "name_required"},
		{req.Phone, "phone_required"},
		{req.ServiceType, "service_type_required"},
		{req.IssueType, "issue_type_required"},
		{req.PropertyType, "property_type_required"},
		{req.ZipCode, "zip_code_required"},
	}
	for _, f := range required {
		if f.val == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": f.code})
			return
		}
	}

	q := &model.QuoteRequest{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		ServiceType:  req.ServiceType,
		IssueType:    req.IssueType,
		PropertyType: req.PropertyType,
		ZipCode:      req.ZipCode,
		Description:  req.Description,
	}

	if err := h.quoteService.Submit(r.Context(), q); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": q.ID})
}

// quoteListResponse is the JSON response for GET /api/admin/quotes.
type quoteListResponse struct {
	Quotes []*model.QuoteRequest `json:"quotes"`
}

// AdminList handles GET /api/admin/quotes.
func (h *QuoteHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := auth.OperatorIDFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	opts := model.QuoteListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  20,
		Offset: 0,
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	quotes, err := h.quoteService.List(r.Context(), opts)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	if quotes == nil {
		quotes = []*model.QuoteRequest{}
	}

	_ = json.NewEncoder(w).Encode(quoteListResponse{Quotes: quotes})
}

// UpdateStatus handles PATCH /api/admin/quotes/{id}/status.
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := auth.OperatorIDFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if !model.ValidQuoteStatus(req.Status) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
		return
	}

	id := r.PathValue("id")
	if err := h.quoteService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "status": req.Status})
}
