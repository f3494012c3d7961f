package rolechange

import (
	"hrcore/internal/domain/employee"
)

type RoleChange struct {
	ID            int64          `json:"id"`
	RoleTitle     string         `json:"role_title"`
	RoleLevel     string         `json:"role_level"`
	AnnualCTC     float64        `json:"annual_ctc"`
	EffectiveFrom employee.Date  `json:"effective_from"`
	EffectiveTo   *employee.Date `json:"effective_to"`
	Notes         string         `json:"notes,omitempty"`
}

type RoleChangeParams struct {
	RoleTitle     string  `json:"role_title"`
	RoleLevel     string  `json:"role_level"`
	AnnualCTC     float64 `json:"annual_ctc"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   string  `json:"effective_to"`
	Notes         string  `json:"notes"`
}
