package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type recordingSeeder struct {
	empID string
	items []string
	err   error
}

func (r *recordingSeeder) SeedChecklist(_ context.Context, empID string, items []string) error {
	r.empID = empID
	r.items = items
	return r.err
}

func issueFields(err error) map[string]string {
	fields := map[string]string{}
	var verr *ValidationError
	if errors.As(err, &verr) {
		for _, issue := range verr.Issues {
			fields[issue.Field] = issue.Reason
		}
	}
	return fields
}

func TestCreateValidation(t *testing.T) {
	service := NewService(nil, nil, nil)

	_, err := service.Create(context.Background(), CreateParams{
		Email:     "not-an-email",
		StartDate: "01/02/2024",
	})

	fields := issueFields(err)
	if len(fields) == 0 {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"emp_id", "first_name", "last_name", "department", "position", "email", "start_date"} {
		if _, ok := fields[field]; !ok {
			t.Fatalf("expected issue for %s, got %v", field, err)
		}
	}
}

func TestCreateSeedsChecklist(t *testing.T) {
	mock, store := newMockStore(t)
	seeder := &recordingSeeder{}
	service := NewService(store, seeder, []string{"ID Proof Submitted", "Signed Offer Letter"})

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(anyArgs(9)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	emp, err := service.Create(context.Background(), CreateParams{
		EmpID:      "EMP010",
		FirstName:  "  Divya ",
		LastName:   "Nair",
		Email:      "divya.nair@example.com",
		Department: "Finance",
		Position:   "Payroll Analyst",
		StartDate:  "2025-01-06",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if emp.Status != StatusActive {
		t.Fatalf("expected active status, got %s", emp.Status)
	}
	if emp.FirstName != "Divya" {
		t.Fatalf("expected trimmed first name, got %q", emp.FirstName)
	}
	if seeder.empID != "EMP010" || len(seeder.items) != 2 {
		t.Fatalf("checklist not seeded: %+v", seeder)
	}
}

func TestCreateSucceedsWhenSeedingFails(t *testing.T) {
	mock, store := newMockStore(t)
	seeder := &recordingSeeder{err: errors.New("seed failed")}
	service := NewService(store, seeder, []string{"ID Proof Submitted"})

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(anyArgs(9)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(8), now, now))

	emp, err := service.Create(context.Background(), CreateParams{
		EmpID:      "EMP011",
		FirstName:  "Rohan",
		LastName:   "Mehta",
		Email:      "rohan.mehta@example.com",
		Department: "Engineering",
		Position:   "Platform Engineer",
		StartDate:  "2024-06-17",
	})
	if err != nil {
		t.Fatalf("expected creation to survive seed failure, got %v", err)
	}
	if emp.EmpID != "EMP011" {
		t.Fatalf("unexpected employee: %+v", emp)
	}
}

func TestExitAlreadyExited(t *testing.T) {
	mock, store := newMockStore(t)
	service := NewService(store, nil, nil)

	now := time.Now().UTC()
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(employeeRowColumns).
		AddRow(int64(1), "EMP001", "Asha", "Iyer", "asha@example.com", "",
			"Engineering", "Backend Engineer", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), &end, StatusExited,
			now, now)
	mock.ExpectQuery("FROM employees").WithArgs("EMP001").WillReturnRows(rows)

	_, err := service.Exit(context.Background(), "EMP001", "2025-06-30", nil)
	fields := issueFields(err)
	if fields["status"] != "employee already exited" {
		t.Fatalf("expected already-exited validation error, got %v", err)
	}
}

func TestExitEndDateBeforeStart(t *testing.T) {
	mock, store := newMockStore(t)
	service := NewService(store, nil, nil)

	mock.ExpectQuery("FROM employees").WithArgs("EMP001").WillReturnRows(activeEmployeeRow(1, "EMP001"))

	_, err := service.Exit(context.Background(), "EMP001", "2023-12-31", nil)
	fields := issueFields(err)
	if fields["end_date"] != "cannot be earlier than start_date" {
		t.Fatalf("expected end_date validation error, got %v", err)
	}
}

func TestExitTransitionsAndBuildsWorkflow(t *testing.T) {
	mock, store := newMockStore(t)
	service := NewService(store, nil, nil)

	mock.ExpectQuery("FROM employees").WithArgs("EMP001").WillReturnRows(activeEmployeeRow(1, "EMP001"))
	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectExec("UPDATE employees").
		WithArgs(anyArgs(3)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO exit_workflows").
		WithArgs(anyArgs(7)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	emp, err := service.Exit(context.Background(), "EMP001", "2025-07-31", &ExitDetails{Reason: "relocation"})
	if err != nil {
		t.Fatalf("Exit returned error: %v", err)
	}
	if emp.Status != StatusExited {
		t.Fatalf("expected exited status, got %s", emp.Status)
	}
	if emp.EndDate == nil || emp.EndDate.String() != "2025-07-31" {
		t.Fatalf("unexpected end date: %v", emp.EndDate)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateRejectsEmptyRequiredFields(t *testing.T) {
	mock, store := newMockStore(t)
	service := NewService(store, nil, nil)

	mock.ExpectQuery("FROM employees").WithArgs("EMP001").WillReturnRows(activeEmployeeRow(1, "EMP001"))

	empty := "  "
	badEmail := "nope"
	_, err := service.Update(context.Background(), "EMP001", UpdateParams{
		FirstName: &empty,
		Email:     &badEmail,
	})

	fields := issueFields(err)
	if fields["first_name"] == "" || fields["email"] == "" {
		t.Fatalf("expected first_name and email issues, got %v", err)
	}
}

func TestSaveBankValidation(t *testing.T) {
	service := NewService(nil, nil, nil)

	_, err := service.SaveBank(context.Background(), "EMP001", BankParams{BankName: "HDFC"})
	fields := issueFields(err)
	for _, field := range []string{"account_holder_name", "account_number", "ifsc_code"} {
		if _, ok := fields[field]; !ok {
			t.Fatalf("expected issue for %s, got %v", field, err)
		}
	}
}
