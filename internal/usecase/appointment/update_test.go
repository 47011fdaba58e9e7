package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

func createTwo(t *testing.T, repo *fakeRepo, clientID, profID, procID uint) (uint, uint) {
	t.Helper()
	createUC := NewCreateAppointment(repo, newTestDispatcher(t))

	a, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		AdminID: 1, ClientID: clientID, ProfessionalID: profID, ProcedureID: procID,
		DateTime: slot,
	})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}

	b, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		AdminID: 1, ClientID: clientID, ProfessionalID: profID, ProcedureID: procID,
		DateTime: slot.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create b: %v", err)
	}

	return a.ID, b.ID
}

func TestUpdateAppointment_SlotConflict(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()
	_, bID := createTwo(t, repo, clientID, profID, procID)

	uc := NewUpdateAppointment(repo, newTestDispatcher(t))

	// mover B para o horário de A (não cancelado) → conflito
	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AdminID: 1, ID: bID,
		ClientID: clientID, ProfessionalID: profID, ProcedureID: procID,
		DateTime: slot,
	})
	if !httperr.IsBusiness(err, "scheduling_conflict") {
		t.Fatalf("expected scheduling_conflict, got %v", err)
	}

	// nada pode ter sido gravado
	stored := repo.appointments[bID]
	if !stored.DateTime.Equal(slot.Add(2 * time.Hour)) {
		t.Fatalf("conflicting update mutated the appointment: %v", stored.DateTime)
	}
}

func TestUpdateAppointment_CanceledSlotIsReusable(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()
	aID, bID := createTwo(t, repo, clientID, profID, procID)

	statusUC := NewChangeAppointmentStatus(repo, newTestDispatcher(t))
	if _, err := statusUC.Execute(context.Background(), 1, aID, string(domain.StatusCanceled)); err != nil {
		t.Fatalf("cancel a: %v", err)
	}

	uc := NewUpdateAppointment(repo, newTestDispatcher(t))
	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AdminID: 1, ID: bID,
		ClientID: clientID, ProfessionalID: profID, ProcedureID: procID,
		DateTime: slot,
	})
	if err != nil {
		t.Fatalf("slot of canceled appointment should be reusable: %v", err)
	}
	if !ap.DateTime.Equal(slot) {
		t.Fatalf("expected date to move to %v, got %v", slot, ap.DateTime)
	}
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()
	uc := NewUpdateAppointment(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AdminID: 1, ID: 999,
		ClientID: clientID, ProfessionalID: profID, ProcedureID: procID,
		DateTime: slot,
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestUpdateAppointment_InactiveReferences(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()
	aID, _ := createTwo(t, repo, clientID, profID, procID)

	inactiveProf := repo.addProfessional(models.Professional{Name: "Afastada", Email: "x@example.com", Active: false})
	inactiveProc := repo.addProcedure(models.Procedure{Name: "Descontinuado", Active: false})

	uc := NewUpdateAppointment(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AdminID: 1, ID: aID,
		ClientID: clientID, ProfessionalID: inactiveProf, ProcedureID: procID,
		DateTime: slot,
	})
	if !httperr.IsBusiness(err, "invalid_professional") {
		t.Fatalf("expected invalid_professional, got %v", err)
	}

	_, err = uc.Execute(context.Background(), UpdateAppointmentInput{
		AdminID: 1, ID: aID,
		ClientID: clientID, ProfessionalID: profID, ProcedureID: inactiveProc,
		DateTime: slot,
	})
	if !httperr.IsBusiness(err, "invalid_procedure") {
		t.Fatalf("expected invalid_procedure, got %v", err)
	}

	_, err = uc.Execute(context.Background(), UpdateAppointmentInput{
		AdminID: 1, ID: aID,
		ClientID: 999, ProfessionalID: profID, ProcedureID: procID,
		DateTime: slot,
	})
	if !httperr.IsBusiness(err, "invalid_client") {
		t.Fatalf("expected invalid_client, got %v", err)
	}
}

func TestUpdateAppointment_StatusDefaultsToScheduled(t *testing.T) {
	repo, clientID, profID, procID := seededRepo()
	aID, _ := createTwo(t, repo, clientID, profID, procID)

	statusUC := NewChangeAppointmentStatus(repo, newTestDispatcher(t))
	if _, err := statusUC.Execute(context.Background(), 1, aID, string(domain.StatusCompleted)); err != nil {
		t.Fatalf("complete a: %v", err)
	}

	uc := NewUpdateAppointment(repo, newTestDispatcher(t))
	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AdminID: 1, ID: aID,
		ClientID: clientID, ProfessionalID: profID, ProcedureID: procID,
		DateTime: slot, // status omitido
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("expected omitted status to default to SCHEDULED, got %q", ap.Status)
	}
}
