package employee

import "time"

const (
	StatusActive = "active"
	StatusExited = "exited"
)

type Employee struct {
	ID         int64     `json:"-"`
	EmpID      string    `json:"emp_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	StartDate  Date      `json:"start_date"`
	EndDate    *Date     `json:"end_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type BankDetail struct {
	BankName          string    `json:"bank_name"`
	AccountHolderName string    `json:"account_holder_name"`
	AccountNumber     string    `json:"account_number"`
	IFSCCode          string    `json:"ifsc_code"`
	BranchName        string    `json:"branch_name,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ExitWorkflow struct {
	LastWorkingDay   Date      `json:"last_working_day"`
	Reason           string    `json:"reason,omitempty"`
	ITClearance      bool      `json:"it_clearance"`
	HRClearance      bool      `json:"hr_clearance"`
	FinanceClearance bool      `json:"finance_clearance"`
	Remarks          string    `json:"remarks,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProfileDocument is the compliance slice of the joined profile view.
type ProfileDocument struct {
	ID         int64      `json:"id"`
	DocType    string     `json:"doc_type"`
	DocNumber  string     `json:"doc_number,omitempty"`
	DocLink    string     `json:"doc_link"`
	Status     string     `json:"status"`
	UploadedAt time.Time  `json:"uploaded_at"`
	VerifiedAt *time.Time `json:"verified_at"`
}

// ProfileRoleChange is the role/CTC timeline slice of the joined profile view.
type ProfileRoleChange struct {
	ID            int64   `json:"id"`
	RoleTitle     string  `json:"role_title"`
	RoleLevel     string  `json:"role_level"`
	AnnualCTC     float64 `json:"annual_ctc"`
	EffectiveFrom Date    `json:"effective_from"`
	EffectiveTo   *Date   `json:"effective_to"`
	Notes         string  `json:"notes,omitempty"`
}

type Profile struct {
	Employee     Employee            `json:"employee"`
	Bank         *BankDetail         `json:"bank"`
	Documents    []ProfileDocument   `json:"documents"`
	CTCTimeline  []ProfileRoleChange `json:"ctc_timeline"`
	ExitWorkflow *ExitWorkflow       `json:"exit_workflow"`
}

type ListFilter struct {
	Status string
	Search string
	SortBy string
	Order  string
}

type CreateParams struct {
	EmpID      string `json:"emp_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	StartDate  string `json:"start_date"`
}

// UpdateParams carries a partial update; nil fields keep their stored value.
// emp_id is immutable and deliberately absent.
type UpdateParams struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	StartDate  *string `json:"start_date"`
}

type ExitDetails struct {
	Reason           string `json:"reason"`
	ITClearance      bool   `json:"it_clearance"`
	HRClearance      bool   `json:"hr_clearance"`
	FinanceClearance bool   `json:"finance_clearance"`
	Remarks          string `json:"remarks"`
}

type ExitWorkflowParams struct {
	LastWorkingDay   string `json:"last_working_day"`
	Reason           string `json:"reason"`
	ITClearance      bool   `json:"it_clearance"`
	HRClearance      bool   `json:"hr_clearance"`
	FinanceClearance bool   `json:"finance_clearance"`
	Remarks          string `json:"remarks"`
}

type BankParams struct {
	BankName          string `json:"bank_name"`
	AccountHolderName string `json:"account_holder_name"`
	AccountNumber     string `json:"account_number"`
	IFSCCode          string `json:"ifsc_code"`
	BranchName        string `json:"branch_name"`
}
