package reports

import (
	"context"
	"sort"
	"strings"
	"time"

	"hrcore/internal/domain/compliance"
	"hrcore/internal/domain/employee"
	"hrcore/internal/domain/rolechange"
)

const bandUnassigned = "unassigned"

type Service struct {
	store *Store
	bands []float64
}

func NewService(store *Store, bands []float64) *Service {
	return &Service{store: store, bands: bands}
}

func (s *Service) Headcount(ctx context.Context) (*HeadcountSummary, error) {
	return s.store.Headcount(ctx)
}

// JoinersLeavers buckets start and end dates into calendar months over the
// inclusive range.
func (s *Service) JoinersLeavers(ctx context.Context, startRaw, endRaw string) ([]MonthBucket, error) {
	start, err := employee.ParseDate(startRaw)
	if err != nil {
		return nil, employee.NewValidationError("start", "must be a valid date in YYYY-MM-DD format")
	}
	end, err := employee.ParseDate(endRaw)
	if err != nil {
		return nil, employee.NewValidationError("end", "must be a valid date in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return nil, employee.NewValidationError("end", "must be on or after start")
	}

	joiners, err := s.store.JoinersByMonth(ctx, start.Time, end.Time)
	if err != nil {
		return nil, err
	}
	leavers, err := s.store.LeaversByMonth(ctx, start.Time, end.Time)
	if err != nil {
		return nil, err
	}

	var buckets []MonthBucket
	for _, month := range MonthsBetween(start.Time, end.Time) {
		buckets = append(buckets, MonthBucket{
			Month:   month,
			Joiners: joiners[month],
			Leavers: leavers[month],
		})
	}
	return buckets, nil
}

// CTCLevelDistribution resolves each active employee's current role record
// and buckets CTC into the configured bands. Employees without role history
// stay in the listing under the unassigned band.
func (s *Service) CTCLevelDistribution(ctx context.Context) (*CTCDistribution, error) {
	refs, err := s.store.activeEmployees(ctx)
	if err != nil {
		return nil, err
	}
	roleHistory, err := s.store.activeRoleChanges(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	bandCounts := make(map[string]int)
	levelCounts := make(map[string]int)

	distribution := &CTCDistribution{}
	for _, ref := range refs {
		entry := CTCEmployee{EmpID: ref.EmpID, Name: ref.Name, Band: bandUnassigned}
		if current := rolechange.Current(roleHistory[ref.EmpID], today); current != nil {
			entry.Level = current.RoleLevel
			entry.CTC = current.AnnualCTC
			entry.Band = BandLabel(current.AnnualCTC, s.bands)
			levelCounts[current.RoleLevel]++
		}
		bandCounts[entry.Band]++
		distribution.Employees = append(distribution.Employees, entry)
	}

	for _, label := range BandLabels(s.bands) {
		if count := bandCounts[label]; count > 0 {
			distribution.Bands = append(distribution.Bands, BandCount{Band: label, Count: count})
		}
	}
	if count := bandCounts[bandUnassigned]; count > 0 {
		distribution.Bands = append(distribution.Bands, BandCount{Band: bandUnassigned, Count: count})
	}

	levels := make([]string, 0, len(levelCounts))
	for level := range levelCounts {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	for _, level := range levels {
		distribution.Levels = append(distribution.Levels, LevelCount{Level: level, Count: levelCounts[level]})
	}

	return distribution, nil
}

func (s *Service) ComplianceStatus(ctx context.Context, status, docType string) ([]ComplianceStatusRow, error) {
	if value := strings.ToLower(strings.TrimSpace(status)); value != "" &&
		value != compliance.StatusPending && value != compliance.StatusVerified {
		return nil, employee.NewValidationError("status", "must be pending or verified")
	}
	return s.store.ComplianceStatus(ctx, status, docType)
}
