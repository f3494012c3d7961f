package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var employeeRowColumns = []string{
	"id", "emp_id", "first_name", "last_name", "email", "phone",
	"department", "position", "start_date", "end_date", "status",
	"created_at", "updated_at",
}

func activeEmployeeRow(id int64, empID string) *pgxmock.Rows {
	now := time.Now().UTC()
	return pgxmock.NewRows(employeeRowColumns).
		AddRow(id, empID, "Asha", "Iyer", "asha@example.com", "9800000001",
			"Engineering", "Backend Engineer", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), nil, StatusActive,
			now, now)
}

// anyArgs builds n wildcard matchers for expectations whose argument
// values are not under test; pgxmock requires the argument count to match.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, NewStore(mock)
}

func TestStoreGetByEmpID(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery("FROM employees").
		WithArgs("EMP001").
		WillReturnRows(activeEmployeeRow(1, "EMP001"))

	emp, err := store.GetByEmpID(context.Background(), "EMP001")
	if err != nil {
		t.Fatalf("GetByEmpID returned error: %v", err)
	}
	if emp.EmpID != "EMP001" || emp.Status != StatusActive {
		t.Fatalf("unexpected employee: %+v", emp)
	}
	if emp.StartDate.String() != "2024-02-01" {
		t.Fatalf("unexpected start date: %s", emp.StartDate)
	}
	if emp.EndDate != nil {
		t.Fatalf("expected nil end date, got %v", emp.EndDate)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreGetByEmpIDNotFound(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery("FROM employees").
		WithArgs("EMP404").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.GetByEmpID(context.Background(), "EMP404")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Key != "EMP404" {
		t.Fatalf("unexpected key: %s", nf.Key)
	}
}

func TestStoreListEscapesSearchWildcards(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery(`ILIKE .+ ESCAPE`).
		WithArgs(`%50\%\_raise%`).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns))

	if _, err := store.List(context.Background(), ListFilter{Search: "50%_raise"}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreInsertMapsEmpIDConflict(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(anyArgs(9)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_emp_id_key"})

	err := store.Insert(context.Background(), &Employee{
		EmpID: "EMP001", FirstName: "Asha", LastName: "Iyer",
		Email: "asha@example.com", Department: "Engineering",
		Position: "Backend Engineer", StartDate: NewDate(time.Now()), Status: StatusActive,
	})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "emp_id" {
		t.Fatalf("expected emp_id conflict, got %s", conflict.Field)
	}
}

func TestStoreInsertMapsEmailConflict(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(anyArgs(9)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})

	err := store.Insert(context.Background(), &Employee{
		EmpID: "EMP002", FirstName: "Rohan", LastName: "Mehta",
		Email: "asha@example.com", Department: "Engineering",
		Position: "Platform Engineer", StartDate: NewDate(time.Now()), Status: StatusActive,
	})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "email" {
		t.Fatalf("expected email conflict, got %s", conflict.Field)
	}
}

func TestStoreExitCommitsEmployeeAndWorkflowTogether(t *testing.T) {
	mock, store := newMockStore(t)

	endDate, _ := ParseDate("2025-07-31")

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectExec("UPDATE employees").
		WithArgs(StatusExited, endDate.Time, "EMP001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO exit_workflows").
		WithArgs(anyArgs(7)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := store.Exit(context.Background(), "EMP001", endDate, &ExitWorkflowParams{
		LastWorkingDay: "2025-07-31",
		Reason:         "relocation",
		ITClearance:    true,
	})
	if err != nil {
		t.Fatalf("Exit returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreExitRollsBackWhenWorkflowFails(t *testing.T) {
	mock, store := newMockStore(t)

	endDate, _ := ParseDate("2025-07-31")
	boom := errors.New("insert failed")

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectExec("UPDATE employees").
		WithArgs(StatusExited, endDate.Time, "EMP001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO exit_workflows").
		WithArgs(anyArgs(7)...).
		WillReturnError(boom)
	mock.ExpectRollback()

	err := store.Exit(context.Background(), "EMP001", endDate, &ExitWorkflowParams{LastWorkingDay: "2025-07-31"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected insert error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreExitUnknownEmployee(t *testing.T) {
	mock, store := newMockStore(t)

	endDate, _ := ParseDate("2025-07-31")

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectExec("UPDATE employees").
		WithArgs(StatusExited, endDate.Time, "EMP404").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := store.Exit(context.Background(), "EMP404", endDate, nil)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestStoreUpsertBankUnknownEmployee(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectExec("INSERT INTO bank_details").
		WithArgs(anyArgs(6)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err := store.UpsertBank(context.Background(), "EMP404", BankParams{
		BankName: "HDFC", AccountHolderName: "Nobody", AccountNumber: "1", IFSCCode: "HDFC0000001",
	})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
