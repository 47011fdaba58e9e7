package appointment

import "testing"

func TestIsValid_AcceptsAllSixStatuses(t *testing.T) {
	for _, s := range []Status{
		StatusScheduled,
		StatusConfirmed,
		StatusInProgress,
		StatusCompleted,
		StatusCanceled,
		StatusNoShow,
	} {
		if !IsValid(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
}

func TestIsValid_RejectsUnknownValues(t *testing.T) {
	for _, s := range []Status{
		"",
		"scheduled",
		"CANCELLED",
		"DONE",
		" SCHEDULED",
	} {
		if IsValid(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusScheduled {
		t.Fatalf("expected initial status SCHEDULED, got %q", InitialStatus())
	}
}
