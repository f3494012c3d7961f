package rolechangehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrcore/internal/domain/rolechange"
	"hrcore/internal/transport/http/api"
	"hrcore/internal/transport/http/middleware"
	"hrcore/internal/transport/http/shared"
)

type Handler struct {
	Service *rolechange.Service
}

func NewHandler(service *rolechange.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{empID}/role-changes", h.handleList)
	r.Post("/employees/{empID}/role-changes", h.handleAdd)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.Service.List(r.Context(), chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	if timeline == nil {
		timeline = []rolechange.RoleChange{}
	}
	api.Success(w, map[string]any{"timeline": timeline}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var params rolechange.RoleChangeParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	record, err := h.Service.Add(r.Context(), chi.URLParam(r, "empID"), params)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Created(w, map[string]any{"role_change": record}, middleware.GetRequestID(r.Context()))
}
