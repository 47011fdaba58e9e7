package appointment

import (
	"context"
	"testing"

	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
)

var allStatuses = []domain.Status{
	domain.StatusScheduled,
	domain.StatusConfirmed,
	domain.StatusInProgress,
	domain.StatusCompleted,
	domain.StatusCanceled,
	domain.StatusNoShow,
}

// Qualquer status pode virar qualquer outro, inclusive COMPLETED → SCHEDULED.
func TestChangeStatus_AnyToAny(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()
	aID, _ := createTwo(t, repo, clientID, profID, procID)

	uc := NewChangeAppointmentStatus(repo, newTestDispatcher(t))

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if _, err := uc.Execute(context.Background(), 1, aID, string(from)); err != nil {
				t.Fatalf("set %s: %v", from, err)
			}
			ap, err := uc.Execute(context.Background(), 1, aID, string(to))
			if err != nil {
				t.Fatalf("transition %s → %s: %v", from, to, err)
			}
			if ap.Status != string(to) {
				t.Fatalf("expected status %s, got %s", to, ap.Status)
			}
		}
	}
}

func TestChangeStatus_RejectsUnknownStatus(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()
	aID, _ := createTwo(t, repo, clientID, profID, procID)

	uc := NewChangeAppointmentStatus(repo, newTestDispatcher(t))

	for _, bad := range []string{"", "DONE", "scheduled", "CANCELLED"} {
		_, err := uc.Execute(context.Background(), 1, aID, bad)
		if !httperr.IsBusiness(err, "invalid_status") {
			t.Fatalf("expected invalid_status for %q, got %v", bad, err)
		}
	}
}

func TestChangeStatus_NotFound(t *testing.T) {
	repo, _, _, _ := seededRepo()
	uc := NewChangeAppointmentStatus(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 42, string(domain.StatusConfirmed))
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()
	aID, _ := createTwo(t, repo, clientID, profID, procID)

	uc := NewDeleteAppointment(repo, newTestDispatcher(t))

	if err := uc.Execute(context.Background(), 1, aID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.appointments[aID]; ok {
		t.Fatalf("appointment still present after delete")
	}

	if err := uc.Execute(context.Background(), 1, aID); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found on second delete, got %v", err)
	}
}
