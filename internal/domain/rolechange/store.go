package rolechange

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrcore/internal/domain/employee"
	"hrcore/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ListByEmployee(ctx context.Context, empID string) ([]RoleChange, error) {
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

	var out []RoleChange
	for rows.Next() {
		record, err := scanRoleChange(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *record)
	}
	return out, rows.Err()
}

func (s *Store) Insert(ctx context.Context, empID string, record RoleChange) (*RoleChange, error) {
	var effectiveTo any
	if record.EffectiveTo != nil {
		effectiveTo = record.EffectiveTo.Time
	}
	row := s.DB.QueryRow(ctx, `
    INSERT INTO role_changes (employee_id, role_title, role_level, annual_ctc, effective_from, effective_to, notes)
    SELECT id, $2, $3, $4, $5, $6, $7 FROM employees WHERE emp_id = $1
    RETURNING id, role_title, role_level, annual_ctc, effective_from, effective_to, notes
  `, empID, record.RoleTitle, record.RoleLevel, record.AnnualCTC,
		record.EffectiveFrom.Time, effectiveTo, record.Notes,
	)
	inserted, err := scanRoleChange(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &employee.NotFoundError{Resource: "employee", Key: empID}
	}
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoleChange(row rowScanner) (*RoleChange, error) {
	var record RoleChange
	var from time.Time
	var to *time.Time
	if err := row.Scan(&record.ID, &record.RoleTitle, &record.RoleLevel, &record.AnnualCTC, &from, &to, &record.Notes); err != nil {
		return nil, err
	}
	record.EffectiveFrom = employee.NewDate(from)
	if to != nil {
		toDate := employee.NewDate(*to)
		record.EffectiveTo = &toDate
	}
	return &record, nil
}
