package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/rafaelsantos7520/dermalise-admin/internal/audit"
	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	AdminID uint

	ClientID       uint
	ProfessionalID uint
	ProcedureID    uint

	DateTime time.Time
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// A criação não checa conflito de horário; somente a atualização checa.
// Dois agendamentos no mesmo slot são permitidos aqui de propósito.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.ClientID == 0 || in.ProfessionalID == 0 || in.ProcedureID == 0 || in.DateTime.IsZero() {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	ap := &models.Appointment{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ProcedureID:    in.ProcedureID,
		DateTime:       in.DateTime,
		Status:         string(domain.InitialStatus()),
		Notes:          normalizeNotes(in.Notes),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &in.AdminID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointmentWithRefs(ctx, ap.ID)
}

// notas em branco viram null no banco
func normalizeNotes(notes string) *string {
	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
