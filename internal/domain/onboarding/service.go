package onboarding

import (
	"context"
	"math"
	"strings"

	"hrcore/internal/domain/employee"
)

type Service struct {
	store     *Store
	employees *employee.Store
}

func NewService(store *Store, employees *employee.Store) *Service {
	return &Service{store: store, employees: employees}
}

func (s *Service) ListItems(ctx context.Context, empID string) ([]Item, error) {
	if _, err := s.employees.GetByEmpID(ctx, empID); err != nil {
		return nil, err
	}
	return s.store.ListItems(ctx, empID)
}

func (s *Service) SaveItems(ctx context.Context, empID string, items []ItemParams) ([]Item, error) {
	if _, err := s.employees.GetByEmpID(ctx, empID); err != nil {
		return nil, err
	}

	verr := &employee.ValidationError{}
	if len(items) == 0 {
		verr.Add("items", "must not be empty")
	}
	for _, item := range items {
		if strings.TrimSpace(item.ItemName) == "" {
			verr.Add("item_name", "is required")
			break
		}
	}
	if verr.HasIssues() {
		return nil, verr
	}

	for _, item := range items {
		if err := s.store.UpsertItem(ctx, empID, item); err != nil {
			return nil, err
		}
	}
	return s.store.ListItems(ctx, empID)
}

// ProgressAll reports per-employee checklist completion. An employee with no
// checklist reports 0%, never a division error.
func (s *Service) ProgressAll(ctx context.Context) ([]Progress, error) {
	rows, err := s.store.ProgressRows(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Percentage = CompletionPercent(rows[i].Completed, rows[i].Total)
	}
	return rows, nil
}

// CompletionPercent rounds half up; total 0 is 0%.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(completed)*100/float64(total) + 0.5))
}
