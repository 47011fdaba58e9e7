package appointment

import (
	"context"
	"sort"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafaelsantos7520/dermalise-admin/internal/audit"
	domain "github.com/rafaelsantos7520/dermalise-admin/internal/domain/appointment"
	"github.com/rafaelsantos7520/dermalise-admin/internal/httperr"
	"github.com/rafaelsantos7520/dermalise-admin/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes dos
// use cases. Aplica a mesma regra de slot do repositório gorm.
type fakeRepo struct {
	clients       map[uint]models.Client
	professionals map[uint]models.Professional
	procedures    map[uint]models.Procedure
	appointments  map[uint]models.Appointment
	nextID        uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:       map[uint]models.Client{},
		professionals: map[uint]models.Professional{},
		procedures:    map[uint]models.Procedure{},
		appointments:  map[uint]models.Appointment{},
	}
}

func (r *fakeRepo) addClient(c models.Client) uint {
	r.nextID++
	c.ID = r.nextID
	r.clients[c.ID] = c
	return c.ID
}

func (r *fakeRepo) addProfessional(p models.Professional) uint {
	r.nextID++
	p.ID = r.nextID
	r.professionals[p.ID] = p
	return p.ID
}

func (r *fakeRepo) addProcedure(p models.Procedure) uint {
	r.nextID++
	p.ID = r.nextID
	r.procedures[p.ID] = p
	return p.ID
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeRepo) GetProfessional(_ context.Context, id uint) (*models.Professional, error) {
	p, ok := r.professionals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeRepo) GetProcedure(_ context.Context, id uint) (*models.Procedure, error) {
	p, ok := r.procedures[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (r *fakeRepo) GetAppointmentWithRefs(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := r.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	ap.Client = r.clients[ap.ClientID]
	ap.Professional = r.professionals[ap.ProfessionalID]
	ap.Procedure = r.procedures[ap.ProcedureID]
	return ap, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID
	ap.CreatedAt = time.Now()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) SaveAppointmentCheckingSlot(_ context.Context, ap *models.Appointment) error {
	for _, other := range r.appointments {
		if other.ID == ap.ID {
			continue
		}
		if other.ProfessionalID == ap.ProfessionalID &&
			other.DateTime.Equal(ap.DateTime) &&
			other.Status != string(domain.StatusCanceled) {
			return httperr.ErrBusiness("scheduling_conflict")
		}
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) UpdateAppointmentStatus(_ context.Context, id uint, status domain.Status) error {
	ap, ok := r.appointments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ap.Status = string(status)
	r.appointments[id] = ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, from, to *time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if from != nil && to != nil {
			if ap.DateTime.Before(*from) || !ap.DateTime.Before(*to) {
				continue
			}
		}
		ap.Client = r.clients[ap.ClientID]
		ap.Professional = r.professionals[ap.ProfessionalID]
		ap.Procedure = r.procedures[ap.ProcedureID]
		out = append(out, ap)
	}

	asc := from != nil && to != nil
	sort.Slice(out, func(i, j int) bool {
		if asc {
			return out[i].DateTime.Before(out[j].DateTime)
		}
		return out[j].DateTime.Before(out[i].DateTime)
	})

	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// helpers
// ------------------------------------------------------

func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("migrate audit log: %v", err)
	}

	return audit.NewDispatcher(audit.New(db))
}

// repo já populado com cliente, profissional e procedimento ativos
func seededRepo() (*fakeRepo, uint, uint, uint) {
	repo := newFakeRepo()
	clientID := repo.addClient(models.Client{Name: "Maria", Email: "maria@example.com"})
	profID := repo.addProfessional(models.Professional{Name: "Dra. Ana", Email: "ana@example.com", Active: true})
	procID := repo.addProcedure(models.Procedure{Name: "Limpeza de pele", DurationMin: 60, Price: 150, Active: true})
	return repo, clientID, profID, procID
}
