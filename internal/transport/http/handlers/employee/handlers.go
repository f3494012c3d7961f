package employeehandler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrcore/internal/domain/employee"
	"hrcore/internal/transport/http/api"
	"hrcore/internal/transport/http/middleware"
	"hrcore/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.handleList)
	r.Post("/employees/create", h.handleCreate)
	r.Get("/employees/{empID}", h.handleGet)
	r.Put("/employees/{empID}", h.handleUpdate)
	r.Post("/employees/{empID}/exit", h.handleExit)
	r.Get("/employees/{empID}/profile", h.handleProfile)
	r.Get("/employees/{empID}/bank", h.handleGetBank)
	r.Put("/employees/{empID}/bank", h.handleSaveBank)
	r.Get("/employees/{empID}/exit-workflow", h.handleGetExitWorkflow)
	r.Post("/employees/{empID}/exit-workflow", h.handleSaveExitWorkflow)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := employee.ListFilter{
		Status: strings.TrimSpace(query.Get("status")),
		Search: strings.TrimSpace(query.Get("search")),
		SortBy: strings.TrimSpace(query.Get("sort_by")),
		Order:  strings.TrimSpace(query.Get("order")),
	}

	employees, err := h.Service.List(r.Context(), filter)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	api.Success(w, map[string]any{"employees": employees, "count": len(employees)}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var params employee.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	created, err := h.Service.Create(r.Context(), params)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Created(w, map[string]any{"employee": created}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Get(r.Context(), chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"employee": emp}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var params employee.UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "empID"), params)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"employee": updated}, middleware.GetRequestID(r.Context()))
}

// exitRequest uses pointers beyond end_date so a plain exit can be told
// apart from one carrying workflow details.
type exitRequest struct {
	EndDate          string  `json:"end_date"`
	Reason           *string `json:"reason"`
	ITClearance      *bool   `json:"it_clearance"`
	HRClearance      *bool   `json:"hr_clearance"`
	FinanceClearance *bool   `json:"finance_clearance"`
	Remarks          *string `json:"remarks"`
}

func (p exitRequest) details() *employee.ExitDetails {
	if p.Reason == nil && p.ITClearance == nil && p.HRClearance == nil &&
		p.FinanceClearance == nil && p.Remarks == nil {
		return nil
	}
	details := &employee.ExitDetails{}
	if p.Reason != nil {
		details.Reason = *p.Reason
	}
	if p.ITClearance != nil {
		details.ITClearance = *p.ITClearance
	}
	if p.HRClearance != nil {
		details.HRClearance = *p.HRClearance
	}
	if p.FinanceClearance != nil {
		details.FinanceClearance = *p.FinanceClearance
	}
	if p.Remarks != nil {
		details.Remarks = *p.Remarks
	}
	return details
}

func (h *Handler) handleExit(w http.ResponseWriter, r *http.Request) {
	var payload exitRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	exited, err := h.Service.Exit(r.Context(), chi.URLParam(r, "empID"), payload.EndDate, payload.details())
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"employee": exited}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.Profile(r.Context(), chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"profile": profile}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.Service.GetBank(r.Context(), chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"bank": bank}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveBank(w http.ResponseWriter, r *http.Request) {
	var params employee.BankParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	bank, err := h.Service.SaveBank(r.Context(), chi.URLParam(r, "empID"), params)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"bank": bank}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetExitWorkflow(w http.ResponseWriter, r *http.Request) {
	workflow, err := h.Service.GetExitWorkflow(r.Context(), chi.URLParam(r, "empID"))
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"exit_workflow": workflow}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveExitWorkflow(w http.ResponseWriter, r *http.Request) {
	var params employee.ExitWorkflowParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		shared.WriteInvalidPayload(w, r)
		return
	}

	workflow, err := h.Service.SaveExitWorkflow(r.Context(), chi.URLParam(r, "empID"), params)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"exit_workflow": workflow}, middleware.GetRequestID(r.Context()))
}
