package compliance

import "time"

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
)

type Document struct {
	ID         int64      `json:"id"`
	DocType    string     `json:"doc_type"`
	DocNumber  string     `json:"doc_number,omitempty"`
	DocLink    string     `json:"doc_link"`
	Status     string     `json:"status"`
	UploadedAt time.Time  `json:"uploaded_at"`
	VerifiedAt *time.Time `json:"verified_at"`
	Remarks    string     `json:"remarks,omitempty"`
}

type DocumentParams struct {
	DocType   string `json:"doc_type"`
	DocNumber string `json:"doc_number"`
	DocLink   string `json:"doc_link"`
	Remarks   string `json:"remarks"`
}

type StatusParams struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// Alert flags one expected document that is absent or awaiting verification
// for an active employee.
type Alert struct {
	DocType string `json:"doc_type"`
	EmpID   string `json:"emp_id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Gap lists an employee's missing and pending document types. Missing means
// no record exists at all; pending means a record exists but is unverified.
type Gap struct {
	EmpID   string   `json:"emp_id"`
	Name    string   `json:"name"`
	Missing []string `json:"missing"`
	Pending []string `json:"pending"`
}

type Dashboard struct {
	ActiveEmployees   int   `json:"active_employees"`
	EmployeesWithGaps int   `json:"employees_with_gaps"`
	PendingDocuments  int   `json:"pending_documents"`
	VerifiedDocuments int   `json:"verified_documents"`
	Gaps              []Gap `json:"gaps"`
}

// EmployeeRef and DocRow are the raw inputs to gap detection.
type EmployeeRef struct {
	EmpID string
	Name  string
}

type DocRow struct {
	EmpID   string
	DocType string
	Status  string
}
