package onboardinghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrcore/internal/domain/onboarding"
	"hrcore/internal/transport/http/api"
	"hrcore/internal/transport/http/middleware"
	"hrcore/internal/transport/http/shared"
)

type Handler struct {
	Service *onboarding.Service
}

func NewHandler(service *onboarding.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{empID}/onboarding", h.handleListItems)
	r.Post("/employees/{empID}/onboarding", h.handleSaveItems)
	r.Get("/onboarding/progress", h.handleProgress)
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context(), chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	if items == nil {
		items = []onboarding.Item{}
	}
	api.Success(w, map[string]any{"items": items}, middleware.GetRequestID(r.Context()))
}

type saveItemsRequest struct {
	Items []onboarding.ItemParams `json:"items"`
}

func (h *Handler) handleSaveItems(w http.ResponseWriter, r *http.Request) {
	var payload saveItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	items, err := h.Service.SaveItems(r.Context(), chi.URLParam(r, "empID"), payload.Items)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"items": items}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.Service.ProgressAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	if progress == nil {
		progress = []onboarding.Progress{}
	}
	api.Success(w, map[string]any{"progress": progress}, middleware.GetRequestID(r.Context()))
}
