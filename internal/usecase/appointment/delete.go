package appointment

import (
	"context"

	"github.com/rafaelsantos7520/dermalise-admin/internal/audit"
	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) error {

	if _, err := uc.repo.GetAppointment(ctx, appointmentID); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
