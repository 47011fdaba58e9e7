package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

func TestListAppointments_TodayFilter(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()

	now := time.Now().UTC()
	for _, at := range []time.Time{
		now.Add(-24 * time.Hour), // ontem
		now,                      // hoje
		now.Add(24 * time.Hour),  // amanhã
	} {
		ap := models.Appointment{
			ClientID:       clientID,
			ProfessionalID: profID,
			ProcedureID:    procID,
			DateTime:       at,
			Status:         "SCHEDULED",
		}
		if err := repo.CreateAppointment(context.Background(), &ap); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	uc := NewListAppointments(repo, "UTC")

	today, err := uc.Execute(context.Background(), true)
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	if len(today) != 1 {
		t.Fatalf("expected 1 appointment today, got %d", len(today))
	}
	if !today[0].DateTime.Equal(now) {
		t.Fatalf("expected today's appointment, got %v", today[0].DateTime)
	}

	all, err := uc.Execute(context.Background(), false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(all))
	}
	// sem filtro a lista vem em ordem decrescente
	if !all[0].DateTime.After(all[1].DateTime) || !all[1].DateTime.After(all[2].DateTime) {
		t.Fatalf("expected descending order, got %v %v %v",
			all[0].DateTime, all[1].DateTime, all[2].DateTime)
	}
}
