package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrcore/internal/platform/config"
)

type seedEmployee struct {
	empID      string
	firstName  string
	lastName   string
	email      string
	phone      string
	department string
	position   string
	startDate  string
}

var demoEmployees = []seedEmployee{
	{"EMP001", "Asha", "Iyer", "asha.iyer@example.com", "9800000001", "Engineering", "Backend Engineer", "2024-02-01"},
	{"EMP002", "Rohan", "Mehta", "rohan.mehta@example.com", "9800000002", "Engineering", "Platform Engineer", "2024-06-17"},
	{"EMP003", "Divya", "Nair", "divya.nair@example.com", "9800000003", "Finance", "Payroll Analyst", "2025-01-06"},
}

// Seed loads a small demo data set for local development. Every statement is
// idempotent so repeated startups are safe.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	for _, emp := range demoEmployees {
		if err := ensureEmployee(ctx, pool, emp); err != nil {
			return err
		}
		if err := ensureChecklist(ctx, pool, emp.empID, cfg.OnboardingChecklist); err != nil {
			return err
		}
	}

	if err := ensureDocument(ctx, pool, "EMP001", "PAN", "ABCDE1234F", "https://docs.example.com/emp001/pan.pdf"); err != nil {
		return err
	}
	if err := ensureDocument(ctx, pool, "EMP001", "AADHAAR", "1234-5678-9012", "https://docs.example.com/emp001/aadhaar.pdf"); err != nil {
		return err
	}
	if err := ensureDocument(ctx, pool, "EMP002", "PAN", "FGHIJ5678K", "https://docs.example.com/emp002/pan.pdf"); err != nil {
		return err
	}

	if err := ensureRoleChange(ctx, pool, "EMP001", "Backend Engineer", "L3", 1400000, "2024-02-01"); err != nil {
		return err
	}
	if err := ensureRoleChange(ctx, pool, "EMP002", "Platform Engineer", "L4", 2200000, "2024-06-17"); err != nil {
		return err
	}
	return ensureRoleChange(ctx, pool, "EMP003", "Payroll Analyst", "L2", 800000, "2025-01-06")
}

func ensureEmployee(ctx context.Context, pool *pgxpool.Pool, emp seedEmployee) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO employees (emp_id, first_name, last_name, email, phone, department, position, start_date, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active')
    ON CONFLICT (emp_id) DO NOTHING
  `, emp.empID, emp.firstName, emp.lastName, emp.email, emp.phone, emp.department, emp.position, emp.startDate)
	return err
}

func ensureChecklist(ctx context.Context, pool *pgxpool.Pool, empID string, items []string) error {
	for _, item := range items {
		_, err := pool.Exec(ctx, `
      INSERT INTO onboarding_items (employee_id, item_name)
      SELECT id, $2 FROM employees WHERE emp_id = $1
      ON CONFLICT (employee_id, item_name) DO NOTHING
    `, empID, item)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureDocument(ctx context.Context, pool *pgxpool.Pool, empID, docType, docNumber, docLink string) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO compliance_documents (employee_id, doc_type, doc_number, doc_link, status)
    SELECT id, $2, $3, $4, 'pending' FROM employees WHERE emp_id = $1
    ON CONFLICT (employee_id, doc_type) DO NOTHING
  `, empID, docType, docNumber, docLink)
	return err
}

func ensureRoleChange(ctx context.Context, pool *pgxpool.Pool, empID, title, level string, ctc float64, from string) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO role_changes (employee_id, role_title, role_level, annual_ctc, effective_from)
    SELECT id, $2, $3, $4, $5 FROM employees WHERE emp_id = $1
      AND NOT EXISTS (
        SELECT 1 FROM role_changes r
        JOIN employees e ON e.id = r.employee_id
        WHERE e.emp_id = $1 AND r.role_title = $2 AND r.effective_from = $5
      )
  `, empID, title, level, ctc, from)
	return err
}
