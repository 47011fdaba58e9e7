package appointment

import (
	"context"
	"time"

	"github.com/rafaelsantos7520/dermalise-admin/internal/audit"
	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	AdminID uint

	ID             uint
	ClientID       uint
	ProfessionalID uint
	ProcedureID    uint

	DateTime time.Time
	Status   string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Agendamento alvo
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// --------------------------------------------------
	// 2. Campos obrigatórios
	// --------------------------------------------------
	if in.ClientID == 0 || in.ProfessionalID == 0 || in.ProcedureID == 0 || in.DateTime.IsZero() {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// 3. Referências: cliente existe, profissional e
	//    procedimento existem E estão ativos
	// --------------------------------------------------
	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("invalid_client")
	}

	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil || !prof.Active {
		return nil, httperr.ErrBusiness("invalid_professional")
	}

	proc, err := uc.repo.GetProcedure(ctx, in.ProcedureID)
	if err != nil || !proc.Active {
		return nil, httperr.ErrBusiness("invalid_procedure")
	}

	// --------------------------------------------------
	// 4. Status (omitido → SCHEDULED)
	// --------------------------------------------------
	status := domain.Status(in.Status)
	if in.Status == "" {
		status = domain.InitialStatus()
	}
	if !domain.IsValid(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// --------------------------------------------------
	// 5. Gravação com checagem de slot na mesma transação
	//    (outro agendamento não cancelado do mesmo
	//    profissional no mesmo horário exato → conflito)
	// --------------------------------------------------
	ap.ClientID = in.ClientID
	ap.ProfessionalID = in.ProfessionalID
	ap.ProcedureID = in.ProcedureID
	ap.DateTime = in.DateTime
	ap.Status = string(status)
	ap.Notes = normalizeNotes(in.Notes)

	if err := uc.repo.SaveAppointmentCheckingSlot(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &in.AdminID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointmentWithRefs(ctx, ap.ID)
}
