package compliance

import (
	"reflect"
	"testing"
)

var expectedTypes = []string{"PAN", "AADHAAR", "BANK_PROOF"}

func TestComputeGapsCompleteSetProducesNoEntry(t *testing.T) {
	refs := []EmployeeRef{{EmpID: "EMP001", Name: "Asha Iyer"}}
	docs := []DocRow{
		{EmpID: "EMP001", DocType: "PAN", Status: StatusVerified},
		{EmpID: "EMP001", DocType: "AADHAAR", Status: StatusVerified},
		{EmpID: "EMP001", DocType: "BANK_PROOF", Status: StatusVerified},
	}

	if gaps := ComputeGaps(refs, docs, expectedTypes); len(gaps) != 0 {
		t.Fatalf("expected no gaps, got %+v", gaps)
	}
}

func TestComputeGapsSplitsMissingAndPending(t *testing.T) {
	refs := []EmployeeRef{
		{EmpID: "EMP001", Name: "Asha Iyer"},
		{EmpID: "EMP002", Name: "Rohan Mehta"},
	}
	docs := []DocRow{
		{EmpID: "EMP001", DocType: "PAN", Status: StatusVerified},
		{EmpID: "EMP001", DocType: "AADHAAR", Status: StatusPending},
	}

	gaps := ComputeGaps(refs, docs, expectedTypes)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}

	first := gaps[0]
	if first.EmpID != "EMP001" {
		t.Fatalf("unexpected first gap: %+v", first)
	}
	if !reflect.DeepEqual(first.Missing, []string{"BANK_PROOF"}) {
		t.Fatalf("unexpected missing set: %v", first.Missing)
	}
	if !reflect.DeepEqual(first.Pending, []string{"AADHAAR"}) {
		t.Fatalf("unexpected pending set: %v", first.Pending)
	}

	second := gaps[1]
	if second.EmpID != "EMP002" || !reflect.DeepEqual(second.Missing, expectedTypes) {
		t.Fatalf("expected all types missing for EMP002, got %+v", second)
	}
}

func TestComputeGapsDocTypeCaseInsensitive(t *testing.T) {
	refs := []EmployeeRef{{EmpID: "EMP001", Name: "Asha Iyer"}}
	docs := []DocRow{
		{EmpID: "EMP001", DocType: "pan", Status: StatusVerified},
		{EmpID: "EMP001", DocType: "Aadhaar", Status: StatusVerified},
		{EmpID: "EMP001", DocType: "bank_proof", Status: StatusVerified},
	}

	if gaps := ComputeGaps(refs, docs, expectedTypes); len(gaps) != 0 {
		t.Fatalf("expected no gaps, got %+v", gaps)
	}
}

func TestComputeGapsIgnoresUnexpectedTypes(t *testing.T) {
	refs := []EmployeeRef{{EmpID: "EMP001", Name: "Asha Iyer"}}
	docs := []DocRow{
		{EmpID: "EMP001", DocType: "PASSPORT", Status: StatusPending},
	}

	gaps := ComputeGaps(refs, docs, expectedTypes)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if len(gaps[0].Pending) != 0 {
		t.Fatalf("unexpected type should not surface as pending: %+v", gaps[0])
	}
	if !reflect.DeepEqual(gaps[0].Missing, expectedTypes) {
		t.Fatalf("unexpected missing set: %v", gaps[0].Missing)
	}
}
