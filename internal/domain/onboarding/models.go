package onboarding

import "time"

type Item struct {
	ID          int64      `json:"id"`
	ItemName    string     `json:"item_name"`
	IsCompleted bool       `json:"is_completed"`
	DocumentRef string     `json:"document_ref,omitempty"`
	CompletedAt *time.Time `json:"completed_at"`
}

type ItemParams struct {
	ItemName    string `json:"item_name"`
	IsCompleted bool   `json:"is_completed"`
	DocumentRef string `json:"document_ref"`
}

// Progress summarizes one employee's checklist completion.
type Progress struct {
	EmpID      string `json:"emp_id"`
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}
