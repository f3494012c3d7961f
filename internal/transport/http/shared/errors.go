package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"hrcore/internal/domain/employee"
	"hrcore/internal/transport/http/api"
	"hrcore/internal/transport/http/middleware"
)

// WriteDomainError maps the domain error taxonomy onto HTTP responses. Errors
// outside the taxonomy are logged and reported as a generic 500.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	var verr *employee.ValidationError
	if errors.As(err, &verr) {
		issues := make([]map[string]string, 0, len(verr.Issues))
		for _, issue := range verr.Issues {
			issues = append(issues, map[string]string{"field": issue.Field, "reason": issue.Reason})
		}
		api.FailWithDetails(w, http.StatusBadRequest, "validation_failed", verr.Error(), map[string]any{"fields": issues}, requestID)
		return
	}

	var cerr *employee.ConflictError
	if errors.As(err, &cerr) {
		api.FailWithDetails(w, http.StatusConflict, "conflict", cerr.Message, map[string]any{"field": cerr.Field}, requestID)
		return
	}

	var nferr *employee.NotFoundError
	if errors.As(err, &nferr) {
		api.Fail(w, http.StatusNotFound, "not_found", nferr.Error(), requestID)
		return
	}

	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err, "requestId", requestID)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", requestID)
}

// WriteInvalidPayload reports an unparseable request body.
func WriteInvalidPayload(w http.ResponseWriter, r *http.Request) {
	api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
}
