package rolechange

import (
	"context"
	"strings"
	"time"

	"hrcore/internal/domain/employee"
)

type Service struct {
	store     *Store
	employees *employee.Store
}

func NewService(store *Store, employees *employee.Store) *Service {
	return &Service{store: store, employees: employees}
}

func (s *Service) List(ctx context.Context, empID string) ([]RoleChange, error) {
	if _, err := s.employees.GetByEmpID(ctx, empID); err != nil {
		return nil, err
	}
	return s.store.ListByEmployee(ctx, empID)
}

// Add records a role/CTC change. Overlapping date ranges with existing
// records are tolerated; reporting resolves the current record dynamically.
func (s *Service) Add(ctx context.Context, empID string, params RoleChangeParams) (*RoleChange, error) {
	verr := &employee.ValidationError{}
	if strings.TrimSpace(params.RoleTitle) == "" {
		verr.Add("role_title", "is required")
	}
	if strings.TrimSpace(params.RoleLevel) == "" {
		verr.Add("role_level", "is required")
	}
	if params.AnnualCTC < 0 {
		verr.Add("annual_ctc", "must not be negative")
	}

	var effectiveFrom employee.Date
	if strings.TrimSpace(params.EffectiveFrom) == "" {
		verr.Add("effective_from", "is required")
	} else {
		parsed, err := employee.ParseDate(params.EffectiveFrom)
		if err != nil {
			verr.Add("effective_from", "must be a valid date in YYYY-MM-DD format")
		} else {
			effectiveFrom = parsed
		}
	}

	var effectiveTo *employee.Date
	if strings.TrimSpace(params.EffectiveTo) != "" {
		parsed, err := employee.ParseDate(params.EffectiveTo)
		if err != nil {
			verr.Add("effective_to", "must be a valid date in YYYY-MM-DD format")
		} else if !effectiveFrom.IsZero() && parsed.Before(effectiveFrom) {
			verr.Add("effective_to", "cannot be before effective_from")
		} else {
			effectiveTo = &parsed
		}
	}
	if verr.HasIssues() {
		return nil, verr
	}

	if _, err := s.employees.GetByEmpID(ctx, empID); err != nil {
		return nil, err
	}

	return s.store.Insert(ctx, empID, RoleChange{
		RoleTitle:     strings.TrimSpace(params.RoleTitle),
		RoleLevel:     strings.TrimSpace(params.RoleLevel),
		AnnualCTC:     params.AnnualCTC,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		Notes:         strings.TrimSpace(params.Notes),
	})
}

// Current picks the record in effect today: the open-ended one, else the
// latest effective_from not in the future. Data-quality violations (several
// open records, overlaps) degrade to a deterministic pick, never an error.
func Current(records []RoleChange, today time.Time) *RoleChange {
	var open *RoleChange
	var latest *RoleChange
	for i := range records {
		record := &records[i]
		if record.EffectiveTo == nil {
			if open == nil || record.EffectiveFrom.Time.After(open.EffectiveFrom.Time) {
				open = record
			}
			continue
		}
		if record.EffectiveFrom.Time.After(today) {
			continue
		}
		if latest == nil || record.EffectiveFrom.Time.After(latest.EffectiveFrom.Time) {
			latest = record
		}
	}
	if open != nil {
		return open
	}
	return latest
}
