package compliance

import (
	"context"
	"errors"

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

const documentColumns = `d.id, d.doc_type, d.doc_number, d.doc_link, d.status, d.uploaded_at, d.verified_at, d.remarks`

func (s *Store) ListByEmployee(ctx context.Context, empID string) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+documentColumns+`
    FROM compliance_documents d
    JOIN employees e ON e.id = d.employee_id
    WHERE e.emp_id = $1
    ORDER BY d.doc_type
  `, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.DocType, &doc.DocNumber, &doc.DocLink, &doc.Status, &doc.UploadedAt, &doc.VerifiedAt, &doc.Remarks); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Upsert inserts or replaces the employee's document of the given type. A
// re-uploaded document returns to pending until verified again.
func (s *Store) Upsert(ctx context.Context, empID string, params DocumentParams) (*Document, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO compliance_documents (employee_id, doc_type, doc_number, doc_link, status, remarks)
    SELECT id, $2, $3, $4, $5, $6 FROM employees WHERE emp_id = $1
    ON CONFLICT (employee_id, doc_type) DO UPDATE
    SET doc_number = EXCLUDED.doc_number,
        doc_link = EXCLUDED.doc_link,
        status = EXCLUDED.status,
        verified_at = NULL,
        remarks = EXCLUDED.remarks,
        uploaded_at = now()
    RETURNING id, doc_type, doc_number, doc_link, status, uploaded_at, verified_at, remarks
  `, empID, params.DocType, params.DocNumber, params.DocLink, StatusPending, params.Remarks)

	var doc Document
	err := row.Scan(&doc.ID, &doc.DocType, &doc.DocNumber, &doc.DocLink, &doc.Status, &doc.UploadedAt, &doc.VerifiedAt, &doc.Remarks)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &employee.NotFoundError{Resource: "employee", Key: empID}
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) UpdateStatus(ctx context.Context, empID string, docID int64, status, remarks string) (*Document, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE compliance_documents d
    SET status = $3,
        verified_at = CASE WHEN $3 = 'verified' THEN now() END,
        remarks = COALESCE(NULLIF($4, ''), d.remarks)
    FROM employees e
    WHERE e.id = d.employee_id AND e.emp_id = $1 AND d.id = $2
    RETURNING d.id, d.doc_type, d.doc_number, d.doc_link, d.status, d.uploaded_at, d.verified_at, d.remarks
  `, empID, docID, status, remarks)

	var doc Document
	err := row.Scan(&doc.ID, &doc.DocType, &doc.DocNumber, &doc.DocLink, &doc.Status, &doc.UploadedAt, &doc.VerifiedAt, &doc.Remarks)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &employee.NotFoundError{Resource: "document", Key: empID}
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) ActiveEmployees(ctx context.Context) ([]EmployeeRef, error) {
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

	var out []EmployeeRef
	for rows.Next() {
		var ref EmployeeRef
		if err := rows.Scan(&ref.EmpID, &ref.Name); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

func (s *Store) ActiveDocuments(ctx context.Context) ([]DocRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.emp_id, d.doc_type, d.status
    FROM compliance_documents d
    JOIN employees e ON e.id = d.employee_id
    WHERE e.status = 'active'
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DocRow
	for rows.Next() {
		var row DocRow
		if err := rows.Scan(&row.EmpID, &row.DocType, &row.Status); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
