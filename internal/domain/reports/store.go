package reports

import (
	"context"
	"strconv"
	"strings"
	"time"

	"hrcore/internal/domain/rolechange"
	"hrcore/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// Headcount computes all three counts in one statement so they reflect the
// same instant.
func (s *Store) Headcount(ctx context.Context) (*HeadcountSummary, error) {
	var summary HeadcountSummary
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COUNT(1) FILTER (WHERE status = 'active'),
           COUNT(1) FILTER (WHERE status = 'exited')
    FROM employees
  `).Scan(&summary.Total, &summary.Active, &summary.Exited)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Store) JoinersByMonth(ctx context.Context, start, end time.Time) (map[string]int, error) {
	return s.countsByMonth(ctx, "start_date", start, end)
}

func (s *Store) LeaversByMonth(ctx context.Context, start, end time.Time) (map[string]int, error) {
	return s.countsByMonth(ctx, "end_date", start, end)
}

func (s *Store) countsByMonth(ctx context.Context, column string, start, end time.Time) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT to_char(date_trunc('month', `+column+`), 'YYYY-MM'), COUNT(1)
    FROM employees
    WHERE `+column+` BETWEEN $1 AND $2
    GROUP BY 1
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var month string
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, err
		}
		counts[month] = count
	}
	return counts, rows.Err()
}

type employeeRef struct {
	EmpID string
	Name  string
}

func (s *Store) activeEmployees(ctx context.Context) ([]employeeRef, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT emp_id, first_name || ' ' || last_name
    FROM employees
    WHERE status = 'active'
    ORDER BY emp_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employeeRef
	for rows.Next() {
		var ref employeeRef
		if err := rows.Scan(&ref.EmpID, &ref.Name); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

func (s *Store) activeRoleChanges(ctx context.Context) (map[string][]rolechange.RoleChange, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.emp_id, r.id, r.role_title, r.role_level, r.annual_ctc, r.effective_from, r.effective_to, r.notes
    FROM role_changes r
    JOIN employees e ON e.id = r.employee_id
    WHERE e.status = 'active'
    ORDER BY e.emp_id, r.effective_from DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]rolechange.RoleChange)
	for rows.Next() {
		var empID string
		var record rolechange.RoleChange
		var from time.Time
		var to *time.Time
		if err := rows.Scan(&empID, &record.ID, &record.RoleTitle, &record.RoleLevel, &record.AnnualCTC, &from, &to, &record.Notes); err != nil {
			return nil, err
		}
		record.EffectiveFrom = newDate(from)
		if to != nil {
			toDate := newDate(*to)
			record.EffectiveTo = &toDate
		}
		out[empID] = append(out[empID], record)
	}
	return out, rows.Err()
}

func (s *Store) ComplianceStatus(ctx context.Context, status, docType string) ([]ComplianceStatusRow, error) {
	query := `
    SELECT e.emp_id, e.first_name || ' ' || e.last_name,
           d.doc_type, d.doc_number, d.status, d.uploaded_at, d.verified_at
    FROM compliance_documents d
    JOIN employees e ON e.id = d.employee_id
    WHERE 1=1
  `
	var args []any
	if value := strings.TrimSpace(status); value != "" {
		query += " AND d.status = $" + strconv.Itoa(len(args)+1)
		args = append(args, strings.ToLower(value))
	}
	if value := strings.TrimSpace(docType); value != "" {
		query += " AND d.doc_type = $" + strconv.Itoa(len(args)+1)
		args = append(args, strings.ToUpper(value))
	}
	query += " ORDER BY e.emp_id, d.doc_type"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ComplianceStatusRow
	for rows.Next() {
		var row ComplianceStatusRow
		if err := rows.Scan(&row.EmpID, &row.Name, &row.DocType, &row.DocNumber, &row.Status, &row.UploadedAt, &row.VerifiedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
