package handler

import (
	"encoding/json"
	"net/http"

	"github.com/prismworks/backend/internal/model"
	"github.com/prismworks/backend/internal/service"
	"github.com/prismworks/backend/pkg/auth"
)

// ClientHandler serves consolidated per-client summaries.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a ClientHandler with the given service.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// clientListResponse is the JSON response for GET /api/admin/clients.
type clientListResponse struct {
	Clients []*model.ClientSummary `json:"clients"`
}

// List handles GET /api/admin/clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := auth.OperatorIDFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	clients, err := h.clientService.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "clients_failed"})
		return
	}

	if clients == nil {
		clients = []*model.ClientSummary{}
	}

	_ = json.NewEncoder(w).Encode(clientListResponse{Clients: clients})
}
