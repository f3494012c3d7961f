package compliancehandler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrcore/internal/domain/compliance"
	"hrcore/internal/transport/http/api"
	"hrcore/internal/transport/http/middleware"
	"hrcore/internal/transport/http/shared"
)

type Handler struct {
	Service *compliance.Service
}

func NewHandler(service *compliance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{empID}/documents", h.handleList)
	r.Post("/employees/{empID}/documents", h.handleAdd)
	r.Post("/employees/{empID}/documents/{docID}/status", h.handleUpdateStatus)
	r.Get("/compliance/dashboard", h.handleDashboard)
	r.Get("/compliance/alerts", h.handleAlerts)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	documents, err := h.Service.List(r.Context(), chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	if documents == nil {
		documents = []compliance.Document{}
	}
	api.Success(w, map[string]any{"documents": documents}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var params compliance.DocumentParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	document, err := h.Service.Add(r.Context(), chi.URLParam(r, "empID"), params)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Created(w, map[string]any{"document": document}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	docID, err := strconv.ParseInt(chi.URLParam(r, "docID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "document id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var params compliance.StatusParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	document, err := h.Service.UpdateStatus(r.Context(), chi.URLParam(r, "empID"), docID, params)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"document": document}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Service.Dashboard(r.Context())
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"dashboard": dashboard}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.Service.Alerts(r.Context())
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	if alerts == nil {
		alerts = []compliance.Alert{}
	}
	api.Success(w, map[string]any{"alerts": alerts}, middleware.GetRequestID(r.Context()))
}
