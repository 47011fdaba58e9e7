package appointment

import (
	"context"
	"time"

	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

type Repository interface {
	// -------- Referências --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProcedure(
		ctx context.Context,
		id uint,
	) (*models.Procedure, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentWithRefs(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveAppointmentCheckingSlot grava o appointment somente se nenhum outro
	// appointment não cancelado do mesmo profissional ocupar exatamente o
	// mesmo horário. Checagem e gravação acontecem na mesma transação.
	SaveAppointmentCheckingSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointmentStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listagem --------
	ListAppointments(
		ctx context.Context,
		from *time.Time,
		to *time.Time,
	) ([]models.Appointment, error)
}
