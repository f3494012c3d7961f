package rolechange

import (
	"testing"
	"time"

	"hrcore/internal/domain/employee"
)

func date(t *testing.T, raw string) employee.Date {
	t.Helper()
	parsed, err := employee.ParseDate(raw)
	if err != nil {
		t.Fatalf("bad test date %q: %v", raw, err)
	}
	return parsed
}

func datePtr(t *testing.T, raw string) *employee.Date {
	t.Helper()
	parsed := date(t, raw)
	return &parsed
}

func TestCurrentPrefersOpenEndedRecord(t *testing.T) {
	today := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	records := []RoleChange{
		{ID: 2, RoleLevel: "L4", EffectiveFrom: date(t, "2025-01-01")},
		{ID: 1, RoleLevel: "L3", EffectiveFrom: date(t, "2024-01-01"), EffectiveTo: datePtr(t, "2024-12-31")},
	}

	current := Current(records, today)
	if current == nil || current.ID != 2 {
		t.Fatalf("expected open-ended record, got %+v", current)
	}
}

func TestCurrentFallsBackToLatestClosedRecord(t *testing.T) {
	today := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	records := []RoleChange{
		{ID: 1, RoleLevel: "L2", EffectiveFrom: date(t, "2023-01-01"), EffectiveTo: datePtr(t, "2023-12-31")},
		{ID: 2, RoleLevel: "L3", EffectiveFrom: date(t, "2024-01-01"), EffectiveTo: datePtr(t, "2024-12-31")},
	}

	current := Current(records, today)
	if current == nil || current.ID != 2 {
		t.Fatalf("expected latest closed record, got %+v", current)
	}
}

func TestCurrentSkipsFutureRecords(t *testing.T) {
	today := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	records := []RoleChange{
		{ID: 1, RoleLevel: "L3", EffectiveFrom: date(t, "2024-01-01"), EffectiveTo: datePtr(t, "2024-12-31")},
		{ID: 2, RoleLevel: "L4", EffectiveFrom: date(t, "2026-01-01"), EffectiveTo: datePtr(t, "2026-12-31")},
	}

	current := Current(records, today)
	if current == nil || current.ID != 1 {
		t.Fatalf("expected past record, got %+v", current)
	}
}

func TestCurrentSeveralOpenRecordsPicksLatestStart(t *testing.T) {
	today := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	records := []RoleChange{
		{ID: 1, RoleLevel: "L3", EffectiveFrom: date(t, "2024-01-01")},
		{ID: 2, RoleLevel: "L4", EffectiveFrom: date(t, "2025-03-01")},
	}

	current := Current(records, today)
	if current == nil || current.ID != 2 {
		t.Fatalf("expected later open record, got %+v", current)
	}
}

func TestCurrentNoHistory(t *testing.T) {
	if current := Current(nil, time.Now()); current != nil {
		t.Fatalf("expected nil for empty history, got %+v", current)
	}
}
