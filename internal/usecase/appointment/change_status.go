package appointment

import (
	"context"

	"github.com/rafaelsantos7520/dermalise-admin/internal/audit"
	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

type ChangeAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute troca apenas o status. Qualquer status pode virar qualquer outro;
// o conjunto é plano, sem grafo de transições.
func (uc *ChangeAppointmentStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	status := domain.Status(newStatus)
	if !domain.IsValid(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if _, err := uc.repo.GetAppointment(ctx, appointmentID); err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &appointmentID,
		Metadata: map[string]any{"status": newStatus},
	})

	return uc.repo.GetAppointmentWithRefs(ctx, appointmentID)
}
