package onboarding

import (
	"context"

	"hrcore/internal/domain/employee"
	"hrcore/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// SeedChecklist instantiates the default checklist for a new employee.
// Existing items are left untouched so re-seeding is safe.
func (s *Store) SeedChecklist(ctx context.Context, empID string, items []string) error {
	for _, name := range items {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO onboarding_items (employee_id, item_name)
      SELECT id, $2 FROM employees WHERE emp_id = $1
      ON CONFLICT (employee_id, item_name) DO NOTHING
    `, empID, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ListItems(ctx context.Context, empID string) ([]Item, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT o.id, o.item_name, o.is_completed, o.document_ref, o.completed_at
    FROM onboarding_items o
    JOIN employees e ON e.id = o.employee_id
    WHERE e.emp_id = $1
    ORDER BY o.id
  `, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.ItemName, &item.IsCompleted, &item.DocumentRef, &item.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// UpsertItem records a checklist entry; completed_at is stamped on the first
// completion and cleared when an item is reopened.
func (s *Store) UpsertItem(ctx context.Context, empID string, item ItemParams) error {
	cmd, err := s.DB.Exec(ctx, `
    INSERT INTO onboarding_items (employee_id, item_name, is_completed, document_ref, completed_at)
    SELECT id, $2, $3, $4, CASE WHEN $3 THEN now() END FROM employees WHERE emp_id = $1
    ON CONFLICT (employee_id, item_name) DO UPDATE
    SET is_completed = EXCLUDED.is_completed,
        document_ref = EXCLUDED.document_ref,
        completed_at = CASE
          WHEN EXCLUDED.is_completed THEN COALESCE(onboarding_items.completed_at, now())
          ELSE NULL
        END,
        updated_at = now()
  `, empID, item.ItemName, item.IsCompleted, item.DocumentRef)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &employee.NotFoundError{Resource: "employee", Key: empID}
	}
	return nil
}

// ProgressRows returns raw per-employee completion counts across the
// organization.
func (s *Store) ProgressRows(ctx context.Context) ([]Progress, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.emp_id, e.first_name || ' ' || e.last_name,
           COUNT(o.id) FILTER (WHERE o.is_completed),
           COUNT(o.id)
    FROM employees e
    LEFT JOIN onboarding_items o ON o.employee_id = e.id
    GROUP BY e.id, e.emp_id, e.first_name, e.last_name
    ORDER BY e.emp_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Progress
	for rows.Next() {
		var p Progress
		if err := rows.Scan(&p.EmpID, &p.Name, &p.Completed, &p.Total); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
