package compliance

import (
	"context"
	"fmt"
	"strings"

	"hrcore/internal/domain/employee"
)

type Service struct {
	store         *Store
	employees     *employee.Store
	expectedTypes []string
}

func NewService(store *Store, employees *employee.Store, expectedTypes []string) *Service {
	return &Service{store: store, employees: employees, expectedTypes: expectedTypes}
}

func (s *Service) List(ctx context.Context, empID string) ([]Document, error) {
	if _, err := s.employees.GetByEmpID(ctx, empID); err != nil {
		return nil, err
	}
	return s.store.ListByEmployee(ctx, empID)
}

// Add upserts the document for (employee, doc_type); a second add of the
// same type replaces the first instead of duplicating it.
func (s *Service) Add(ctx context.Context, empID string, params DocumentParams) (*Document, error) {
	verr := &employee.ValidationError{}
	params.DocType = strings.ToUpper(strings.TrimSpace(params.DocType))
	if params.DocType == "" {
		verr.Add("doc_type", "is required")
	}
	if strings.TrimSpace(params.DocLink) == "" {
		verr.Add("doc_link", "is required")
	}
	if verr.HasIssues() {
		return nil, verr
	}
	return s.store.Upsert(ctx, empID, params)
}

// UpdateStatus flips a document between pending and verified. Verification
// is allowed after the employee has exited.
func (s *Service) UpdateStatus(ctx context.Context, empID string, docID int64, params StatusParams) (*Document, error) {
	status := strings.ToLower(strings.TrimSpace(params.Status))
	if status != StatusPending && status != StatusVerified {
		return nil, employee.NewValidationError("status", "must be pending or verified")
	}
	if _, err := s.employees.GetByEmpID(ctx, empID); err != nil {
		return nil, err
	}
	return s.store.UpdateStatus(ctx, empID, docID, status, params.Remarks)
}

// Alerts returns one entry per (active employee, expected doc type) that is
// missing or still pending.
func (s *Service) Alerts(ctx context.Context) ([]Alert, error) {
	refs, docs, err := s.activeRows(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []Alert
	for _, gap := range ComputeGaps(refs, docs, s.expectedTypes) {
		for _, docType := range gap.Missing {
			alerts = append(alerts, Alert{
				DocType: docType,
				EmpID:   gap.EmpID,
				Name:    gap.Name,
				Status:  "missing",
				Message: fmt.Sprintf("%s has no %s document on file", gap.Name, docType),
			})
		}
		for _, docType := range gap.Pending {
			alerts = append(alerts, Alert{
				DocType: docType,
				EmpID:   gap.EmpID,
				Name:    gap.Name,
				Status:  StatusPending,
				Message: fmt.Sprintf("%s document for %s is awaiting verification", docType, gap.Name),
			})
		}
	}
	return alerts, nil
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	refs, docs, err := s.activeRows(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{ActiveEmployees: len(refs)}
	for _, doc := range docs {
		switch doc.Status {
		case StatusPending:
			dashboard.PendingDocuments++
		case StatusVerified:
			dashboard.VerifiedDocuments++
		}
	}
	dashboard.Gaps = ComputeGaps(refs, docs, s.expectedTypes)
	dashboard.EmployeesWithGaps = len(dashboard.Gaps)
	return dashboard, nil
}

func (s *Service) activeRows(ctx context.Context) ([]EmployeeRef, []DocRow, error) {
	refs, err := s.store.ActiveEmployees(ctx)
	if err != nil {
		return nil, nil, err
	}
	docs, err := s.store.ActiveDocuments(ctx)
	if err != nil {
		return nil, nil, err
	}
	return refs, docs, nil
}

// ComputeGaps compares each employee's documents against the expected types.
// Employees with a complete, verified set produce no entry.
func ComputeGaps(refs []EmployeeRef, docs []DocRow, expectedTypes []string) []Gap {
	byEmployee := make(map[string]map[string]string, len(refs))
	for _, doc := range docs {
		if byEmployee[doc.EmpID] == nil {
			byEmployee[doc.EmpID] = make(map[string]string)
		}
		byEmployee[doc.EmpID][strings.ToUpper(doc.DocType)] = doc.Status
	}

	var gaps []Gap
	for _, ref := range refs {
		gap := Gap{EmpID: ref.EmpID, Name: ref.Name}
		for _, docType := range expectedTypes {
			status, ok := byEmployee[ref.EmpID][strings.ToUpper(docType)]
			switch {
			case !ok:
				gap.Missing = append(gap.Missing, docType)
			case status == StatusPending:
				gap.Pending = append(gap.Pending, docType)
			}
		}
		if len(gap.Missing) > 0 || len(gap.Pending) > 0 {
			gaps = append(gaps, gap)
		}
	}
	return gaps
}
