package reportshandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrcore/internal/domain/reports"
	"hrcore/internal/transport/http/api"
	"hrcore/internal/transport/http/middleware"
	"hrcore/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/headcount", h.handleHeadcount)
	r.Get("/reports/joiners-leavers", h.handleJoinersLeavers)
	r.Get("/reports/ctc-level-distribution", h.handleCTCLevelDistribution)
	r.Get("/reports/compliance-status", h.handleComplianceStatus)
}

func wantsPDF(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), "pdf")
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) handleHeadcount(w http.ResponseWriter, r *http.Request) {
	if wantsPDF(r) {
		data, err := h.Service.HeadcountPDF(r.Context())
		if err != nil {
			shared.WriteDomainError(w, r, err)
			return
		}
		writePDF(w, "headcount.pdf", data)
		return
	}

	summary, err := h.Service.Headcount(r.Context())
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"summary": summary}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleJoinersLeavers(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	if wantsPDF(r) {
		data, err := h.Service.JoinersLeaversPDF(r.Context(), start, end)
		if err != nil {
			shared.WriteDomainError(w, r, err)
			return
		}
		writePDF(w, "joiners-leavers.pdf", data)
		return
	}

	buckets, err := h.Service.JoinersLeavers(r.Context(), start, end)
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	if buckets == nil {
		buckets = []reports.MonthBucket{}
	}
	api.Success(w, map[string]any{"months": buckets}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCTCLevelDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.Service.CTCLevelDistribution(r.Context())
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	api.Success(w, map[string]any{"distribution": distribution}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleComplianceStatus(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rows, err := h.Service.ComplianceStatus(r.Context(), query.Get("status"), query.Get("doc_type"))
	if err != nil {
		shared.WriteDomainError(w, r, err)
		return
	}
	if rows == nil {
		rows = []reports.ComplianceStatusRow{}
	}
	api.Success(w, map[string]any{"documents": rows}, middleware.GetRequestID(r.Context()))
}
