package reports

import "time"

type HeadcountSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Exited int `json:"exited"`
}

// MonthBucket reports joiners and leavers for one YYYY-MM calendar month.
// Every month in the requested range is emitted, zeros included.
type MonthBucket struct {
	Month   string `json:"month"`
	Joiners int    `json:"joiners"`
	Leavers int    `json:"leavers"`
}

type CTCEmployee struct {
	EmpID string  `json:"emp_id"`
	Name  string  `json:"name"`
	Level string  `json:"level,omitempty"`
	CTC   float64 `json:"ctc"`
	Band  string  `json:"band"`
}

type BandCount struct {
	Band  string `json:"band"`
	Count int    `json:"count"`
}

type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type CTCDistribution struct {
	Employees []CTCEmployee `json:"employees"`
	Bands     []BandCount   `json:"bands"`
	Levels    []LevelCount  `json:"levels"`
}

type ComplianceStatusRow struct {
	EmpID      string     `json:"emp_id"`
	Name       string     `json:"name"`
	DocType    string     `json:"doc_type"`
	DocNumber  string     `json:"doc_number,omitempty"`
	Status     string     `json:"status"`
	UploadedAt time.Time  `json:"uploaded_at"`
	VerifiedAt *time.Time `json:"verified_at"`
}
