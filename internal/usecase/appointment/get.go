package appointment

import (
	"context"

	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/dto"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*dto.AppointmentDetailDTO, error) {

	ap, err := uc.repo.GetAppointmentWithRefs(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return &dto.AppointmentDetailDTO{
		ID:               ap.ID,
		ClientID:         ap.ClientID,
		ClientName:       ap.Client.Name,
		ProfessionalID:   ap.ProfessionalID,
		ProfessionalName: ap.Professional.Name,
		ProcedureID:      ap.ProcedureID,
		ProcedureName:    ap.Procedure.Name,
		DateTime:         ap.DateTime,
		Status:           ap.Status,
		Notes:            ap.Notes,
		CreatedAt:        ap.CreatedAt,
	}, nil
}
