package appointment

import (
	"context"
	"time"

	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/dto"
	"github.com/rafaelsantos7520/dermalise-admin/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
	tz   string
}

func NewListAppointments(repo domain.Repository, tz string) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		tz:   tz,
	}
}

// Execute lista todos os agendamentos (mais recentes primeiro) ou, com
// today=true, apenas os do dia corrente no fuso da clínica, em ordem
// crescente de horário.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	today bool,
) ([]dto.AppointmentListDTO, error) {

	var from, to *time.Time
	if today {
		start, end := timezone.DayBounds(time.Now(), uc.tz)
		from, to = &start, &end
	}

	appointments, err := uc.repo.ListAppointments(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			DateTime:         ap.DateTime,
			Status:           ap.Status,
			ClientName:       ap.Client.Name,
			ProfessionalName: ap.Professional.Name,
			ProcedureName:    ap.Procedure.Name,
		})
	}

	return out, nil
}
