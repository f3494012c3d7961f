package employee

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrcore/internal/platform/querier"
)

type Store struct {
	DB querier.Beginner
}

func NewStore(db querier.Beginner) *Store {
	return &Store{DB: db}
}

const employeeColumns = `id, emp_id, first_name, last_name, email, phone, department, position, start_date, end_date, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*Employee, error) {
	var emp Employee
	var start time.Time
	var end *time.Time
	if err := row.Scan(
		&emp.ID, &emp.EmpID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.Department, &emp.Position, &start, &end, &emp.Status,
		&emp.CreatedAt, &emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	emp.StartDate = NewDate(start)
	if end != nil {
		endDate := NewDate(*end)
		emp.EndDate = &endDate
	}
	return &emp, nil
}

func (s *Store) GetByEmpID(ctx context.Context, empID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE emp_id = $1
  `, empID)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Resource: "employee", Key: empID}
	}
	return emp, err
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Employee, error) {
	query := `
    SELECT ` + employeeColumns + `
    FROM employees
    WHERE 1=1
  `
	var args []any

	if status := strings.TrimSpace(filter.Status); status != "" {
		query += " AND status = $" + strconv.Itoa(len(args)+1)
		args = append(args, status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		query += " AND (emp_id ILIKE " + placeholder + likeEscapeClause +
			" OR first_name ILIKE " + placeholder + likeEscapeClause +
			" OR last_name ILIKE " + placeholder + likeEscapeClause +
			" OR (first_name || ' ' || last_name) ILIKE " + placeholder + likeEscapeClause +
			" OR email ILIKE " + placeholder + likeEscapeClause + ")"
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += orderClause(filter.SortBy, filter.Order)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

const likeEscapeClause = ` ESCAPE '\'`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so search text matches
// literally instead of acting as a wildcard pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderClause whitelists sort fields; anything else keeps insertion order.
// Equal keys tie-break by emp_id ascending for deterministic listings.
func orderClause(sortBy, order string) string {
	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		direction = "DESC"
	}
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "name":
		return " ORDER BY first_name " + direction + ", last_name " + direction + ", emp_id ASC"
	case "start_date":
		return " ORDER BY start_date " + direction + ", emp_id ASC"
	default:
		return " ORDER BY id ASC"
	}
}

func (s *Store) Insert(ctx context.Context, emp *Employee) error {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (emp_id, first_name, last_name, email, phone, department, position, start_date, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id, created_at, updated_at
  `, emp.EmpID, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.Department, emp.Position, emp.StartDate.Time, emp.Status,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	return mapConflict(err)
}

func (s *Store) Update(ctx context.Context, emp *Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1,
        last_name = $2,
        email = $3,
        phone = $4,
        department = $5,
        position = $6,
        start_date = $7,
        updated_at = now()
    WHERE emp_id = $8
  `, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Department,
		emp.Position, emp.StartDate.Time, emp.EmpID,
	)
	if err != nil {
		return mapConflict(err)
	}
	if cmd.RowsAffected() == 0 {
		return &NotFoundError{Resource: "employee", Key: emp.EmpID}
	}
	return nil
}

// Exit flips the lifecycle state and upserts the exit workflow in one
// transaction; both rows commit or roll back together.
func (s *Store) Exit(ctx context.Context, empID string, endDate Date, workflow *ExitWorkflowParams) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
    UPDATE employees
    SET status = $1, end_date = $2, updated_at = now()
    WHERE emp_id = $3
  `, StatusExited, endDate.Time, empID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &NotFoundError{Resource: "employee", Key: empID}
	}

	if workflow != nil {
		if err := upsertExitWorkflow(ctx, tx, empID, workflow); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// SaveExitWorkflow upserts the workflow record for an already exited
// employee without touching the lifecycle columns.
func (s *Store) SaveExitWorkflow(ctx context.Context, empID string, workflow *ExitWorkflowParams) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := upsertExitWorkflow(ctx, tx, empID, workflow); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func upsertExitWorkflow(ctx context.Context, tx pgx.Tx, empID string, workflow *ExitWorkflowParams) error {
	lastWorkingDay, err := ParseDate(workflow.LastWorkingDay)
	if err != nil {
		return NewValidationError("last_working_day", "must be a valid date in YYYY-MM-DD format")
	}
	cmd, err := tx.Exec(ctx, `
    INSERT INTO exit_workflows (employee_id, last_working_day, reason, it_clearance, hr_clearance, finance_clearance, remarks)
    SELECT id, $2, $3, $4, $5, $6, $7 FROM employees WHERE emp_id = $1
    ON CONFLICT (employee_id) DO UPDATE
    SET last_working_day = EXCLUDED.last_working_day,
        reason = EXCLUDED.reason,
        it_clearance = EXCLUDED.it_clearance,
        hr_clearance = EXCLUDED.hr_clearance,
        finance_clearance = EXCLUDED.finance_clearance,
        remarks = EXCLUDED.remarks,
        updated_at = now()
  `, empID, lastWorkingDay.Time, workflow.Reason, workflow.ITClearance,
		workflow.HRClearance, workflow.FinanceClearance, workflow.Remarks,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &NotFoundError{Resource: "employee", Key: empID}
	}
	return nil
}

func (s *Store) GetExitWorkflow(ctx context.Context, empID string) (*ExitWorkflow, error) {
	var wf ExitWorkflow
	var lastWorkingDay time.Time
	err := s.DB.QueryRow(ctx, `
    SELECT w.last_working_day, w.reason, w.it_clearance, w.hr_clearance, w.finance_clearance, w.remarks, w.updated_at
    FROM exit_workflows w
    JOIN employees e ON e.id = w.employee_id
    WHERE e.emp_id = $1
  `, empID).Scan(&lastWorkingDay, &wf.Reason, &wf.ITClearance, &wf.HRClearance, &wf.FinanceClearance, &wf.Remarks, &wf.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Resource: "exit workflow", Key: empID}
	}
	if err != nil {
		return nil, err
	}
	wf.LastWorkingDay = NewDate(lastWorkingDay)
	return &wf, nil
}

func (s *Store) GetBank(ctx context.Context, empID string) (*BankDetail, error) {
	var bank BankDetail
	err := s.DB.QueryRow(ctx, `
    SELECT b.bank_name, b.account_holder_name, b.account_number, b.ifsc_code, b.branch_name, b.updated_at
    FROM bank_details b
    JOIN employees e ON e.id = b.employee_id
    WHERE e.emp_id = $1
  `, empID).Scan(&bank.BankName, &bank.AccountHolderName, &bank.AccountNumber, &bank.IFSCCode, &bank.BranchName, &bank.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Resource: "bank detail", Key: empID}
	}
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

func (s *Store) UpsertBank(ctx context.Context, empID string, bank BankParams) error {
	cmd, err := s.DB.Exec(ctx, `
    INSERT INTO bank_details (employee_id, bank_name, account_holder_name, account_number, ifsc_code, branch_name)
    SELECT id, $2, $3, $4, $5, $6 FROM employees WHERE emp_id = $1
    ON CONFLICT (employee_id) DO UPDATE
    SET bank_name = EXCLUDED.bank_name,
        account_holder_name = EXCLUDED.account_holder_name,
        account_number = EXCLUDED.account_number,
        ifsc_code = EXCLUDED.ifsc_code,
        branch_name = EXCLUDED.branch_name,
        updated_at = now()
  `, empID, bank.BankName, bank.AccountHolderName, bank.AccountNumber, bank.IFSCCode, bank.BranchName)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &NotFoundError{Resource: "employee", Key: empID}
	}
	return nil
}

func (s *Store) ProfileDocuments(ctx context.Context, empID string) ([]ProfileDocument, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.id, d.doc_type, d.doc_number, d.doc_link, d.status, d.uploaded_at, d.verified_at
    FROM compliance_documents d
    JOIN employees e ON e.id = d.employee_id
    WHERE e.emp_id = $1
    ORDER BY d.doc_type
  `, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProfileDocument
	for rows.Next() {
		var doc ProfileDocument
		if err := rows.Scan(&doc.ID, &doc.DocType, &doc.DocNumber, &doc.DocLink, &doc.Status, &doc.UploadedAt, &doc.VerifiedAt); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (s *Store) ProfileRoleChanges(ctx context.Context, empID string) ([]ProfileRoleChange, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.id, r.role_title, r.role_level, r.annual_ctc, r.effective_from, r.effective_to, r.notes
    FROM role_changes r
    JOIN employees e ON e.id = r.employee_id
    WHERE e.emp_id = $1
    ORDER BY r.effective_from DESC, r.id DESC
  `, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProfileRoleChange
	for rows.Next() {
		var rc ProfileRoleChange
		var from time.Time
		var to *time.Time
		if err := rows.Scan(&rc.ID, &rc.RoleTitle, &rc.RoleLevel, &rc.AnnualCTC, &from, &to, &rc.Notes); err != nil {
			return nil, err
		}
		rc.EffectiveFrom = NewDate(from)
		if to != nil {
			toDate := NewDate(*to)
			rc.EffectiveTo = &toDate
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// mapConflict translates unique-constraint violations on emp_id/email into
// the domain conflict error.
func mapConflict(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "emp_id") {
			return &ConflictError{Field: "emp_id", Message: "employee id already exists"}
		}
		return &ConflictError{Field: "email", Message: "email already exists"}
	}
	return err
}
