package employee

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ChecklistSeeder instantiates the default onboarding checklist for a new
// employee. The onboarding store implements it; creation invokes it
// synchronously.
type ChecklistSeeder interface {
	SeedChecklist(ctx context.Context, empID string, items []string) error
}

type Service struct {
	store     *Store
	seeder    ChecklistSeeder
	checklist []string
}

func NewService(store *Store, seeder ChecklistSeeder, checklist []string) *Service {
	return &Service{store: store, seeder: seeder, checklist: checklist}
}

func (s *Service) Get(ctx context.Context, empID string) (*Employee, error) {
	return s.store.GetByEmpID(ctx, empID)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Employee, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Employee, error) {
	verr := &ValidationError{}
	required := []struct{ field, value string }{
		{"emp_id", params.EmpID},
		{"first_name", params.FirstName},
		{"last_name", params.LastName},
		{"email", params.Email},
		{"department", params.Department},
		{"position", params.Position},
		{"start_date", params.StartDate},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			verr.Add(item.field, "is required")
		}
	}
	if email := strings.TrimSpace(params.Email); email != "" && !emailPattern.MatchString(email) {
		verr.Add("email", "must be a valid email address")
	}
	var startDate Date
	if strings.TrimSpace(params.StartDate) != "" {
		parsed, err := ParseDate(params.StartDate)
		if err != nil {
			verr.Add("start_date", "must be a valid date in YYYY-MM-DD format")
		} else {
			startDate = parsed
		}
	}
	if verr.HasIssues() {
		return nil, verr
	}

	emp := &Employee{
		EmpID:      strings.TrimSpace(params.EmpID),
		FirstName:  strings.TrimSpace(params.FirstName),
		LastName:   strings.TrimSpace(params.LastName),
		Email:      strings.TrimSpace(params.Email),
		Phone:      strings.TrimSpace(params.Phone),
		Department: strings.TrimSpace(params.Department),
		Position:   strings.TrimSpace(params.Position),
		StartDate:  startDate,
		Status:     StatusActive,
	}
	if err := s.store.Insert(ctx, emp); err != nil {
		return nil, err
	}

	if s.seeder != nil && len(s.checklist) > 0 {
		if err := s.seeder.SeedChecklist(ctx, emp.EmpID, s.checklist); err != nil {
			slog.Warn("onboarding checklist seed failed", "empId", emp.EmpID, "err", err)
		}
	}

	return emp, nil
}

func (s *Service) Update(ctx context.Context, empID string, params UpdateParams) (*Employee, error) {
	emp, err := s.store.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	if params.FirstName != nil {
		if strings.TrimSpace(*params.FirstName) == "" {
			verr.Add("first_name", "must not be empty")
		} else {
			emp.FirstName = strings.TrimSpace(*params.FirstName)
		}
	}
	if params.LastName != nil {
		if strings.TrimSpace(*params.LastName) == "" {
			verr.Add("last_name", "must not be empty")
		} else {
			emp.LastName = strings.TrimSpace(*params.LastName)
		}
	}
	if params.Email != nil {
		email := strings.TrimSpace(*params.Email)
		if !emailPattern.MatchString(email) {
			verr.Add("email", "must be a valid email address")
		} else {
			emp.Email = email
		}
	}
	if params.Phone != nil {
		emp.Phone = strings.TrimSpace(*params.Phone)
	}
	if params.Department != nil {
		if strings.TrimSpace(*params.Department) == "" {
			verr.Add("department", "must not be empty")
		} else {
			emp.Department = strings.TrimSpace(*params.Department)
		}
	}
	if params.Position != nil {
		if strings.TrimSpace(*params.Position) == "" {
			verr.Add("position", "must not be empty")
		} else {
			emp.Position = strings.TrimSpace(*params.Position)
		}
	}
	if params.StartDate != nil {
		parsed, err := ParseDate(*params.StartDate)
		if err != nil {
			verr.Add("start_date", "must be a valid date in YYYY-MM-DD format")
		} else if emp.EndDate != nil && emp.EndDate.Before(parsed) {
			verr.Add("start_date", "must be on or before end_date")
		} else {
			emp.StartDate = parsed
		}
	}
	if verr.HasIssues() {
		return nil, verr
	}

	if err := s.store.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Exit performs the one legal lifecycle transition. When details are
// supplied the workflow record is written in the same transaction.
func (s *Service) Exit(ctx context.Context, empID, endDateRaw string, details *ExitDetails) (*Employee, error) {
	emp, err := s.store.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, err
	}
	if emp.Status == StatusExited {
		return nil, NewValidationError("status", "employee already exited")
	}

	endDate, err := ParseDate(endDateRaw)
	if err != nil {
		return nil, NewValidationError("end_date", "must be a valid date in YYYY-MM-DD format")
	}
	if endDate.Before(emp.StartDate) {
		return nil, NewValidationError("end_date", "cannot be earlier than start_date")
	}

	var workflow *ExitWorkflowParams
	if details != nil {
		workflow = &ExitWorkflowParams{
			LastWorkingDay:   endDate.String(),
			Reason:           details.Reason,
			ITClearance:      details.ITClearance,
			HRClearance:      details.HRClearance,
			FinanceClearance: details.FinanceClearance,
			Remarks:          details.Remarks,
		}
	}
	if err := s.store.Exit(ctx, empID, endDate, workflow); err != nil {
		return nil, err
	}

	emp.Status = StatusExited
	emp.EndDate = &endDate
	return emp, nil
}

// SaveExitWorkflow upserts the workflow record and, for an active employee,
// also triggers the exit transition atomically. Re-saving for an exited
// employee only refreshes the workflow row.
func (s *Service) SaveExitWorkflow(ctx context.Context, empID string, params ExitWorkflowParams) (*ExitWorkflow, error) {
	emp, err := s.store.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, err
	}

	lastWorkingDay, err := ParseDate(params.LastWorkingDay)
	if err != nil {
		return nil, NewValidationError("last_working_day", "must be a valid date in YYYY-MM-DD format")
	}

	if emp.Status == StatusActive {
		if lastWorkingDay.Before(emp.StartDate) {
			return nil, NewValidationError("last_working_day", "cannot be earlier than start_date")
		}
		if err := s.store.Exit(ctx, empID, lastWorkingDay, &params); err != nil {
			return nil, err
		}
	} else {
		if err := s.store.SaveExitWorkflow(ctx, empID, &params); err != nil {
			return nil, err
		}
	}

	return s.store.GetExitWorkflow(ctx, empID)
}

func (s *Service) GetExitWorkflow(ctx context.Context, empID string) (*ExitWorkflow, error) {
	return s.store.GetExitWorkflow(ctx, empID)
}

func (s *Service) GetBank(ctx context.Context, empID string) (*BankDetail, error) {
	if _, err := s.store.GetByEmpID(ctx, empID); err != nil {
		return nil, err
	}
	return s.store.GetBank(ctx, empID)
}

func (s *Service) SaveBank(ctx context.Context, empID string, params BankParams) (*BankDetail, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(params.BankName) == "" {
		verr.Add("bank_name", "is required")
	}
	if strings.TrimSpace(params.AccountHolderName) == "" {
		verr.Add("account_holder_name", "is required")
	}
	if strings.TrimSpace(params.AccountNumber) == "" {
		verr.Add("account_number", "is required")
	}
	if strings.TrimSpace(params.IFSCCode) == "" {
		verr.Add("ifsc_code", "is required")
	}
	if verr.HasIssues() {
		return nil, verr
	}
	if err := s.store.UpsertBank(ctx, empID, params); err != nil {
		return nil, err
	}
	return s.store.GetBank(ctx, empID)
}

// Profile assembles the joined employee view: record, bank detail,
// compliance documents, role/CTC timeline, and exit workflow when present.
func (s *Service) Profile(ctx context.Context, empID string) (*Profile, error) {
	emp, err := s.store.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{Employee: *emp}

	bank, err := s.store.GetBank(ctx, empID)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	profile.Bank = bank

	docs, err := s.store.ProfileDocuments(ctx, empID)
	if err != nil {
		return nil, err
	}
	profile.Documents = docs

	timeline, err := s.store.ProfileRoleChanges(ctx, empID)
	if err != nil {
		return nil, err
	}
	profile.CTCTimeline = timeline

	workflow, err := s.store.GetExitWorkflow(ctx, empID)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	profile.ExitWorkflow = workflow

	return profile, nil
}

func isNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
