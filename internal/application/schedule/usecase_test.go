package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/schedule"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner reusa los mismos repos (no hay aislamiento
// que simular aquí: cada test ejecuta las reservas en secuencia, igual que el
// lock FOR UPDATE de la agenda las serializa en producción).
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyID = "00000000-0000-0000-0000-00000000000a"
	agendaID  = "00000000-0000-0000-0000-000000000030"
)

// lunes 2024-03-04, agenda MON 09:00–12:00, range 60, buffer 15 → 09:15 y 10:15
var (
	monday   = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	slot0915 = time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC)
	slot1015 = time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC)
	sunday   = time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)
)

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCompanyRepo) GetByTaxID(string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Update(*entity.Company) error               { return nil }
func (r *fakeCompanyRepo) List(int, int) ([]*entity.Company, error)   { return nil, nil }
func (r *fakeCompanyRepo) GetActiveModules(string) ([]*entity.CompanyModule, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) ActivateModule(*entity.CompanyModule) error { return nil }

type fakeAgendaRepo struct {
	agendas map[string]*entity.Agenda // clave: companyID
}

func (r *fakeAgendaRepo) Create(a *entity.Agenda) error { r.agendas[a.CompanyID] = a; return nil }
func (r *fakeAgendaRepo) GetByCompany(companyID string) (*entity.Agenda, error) {
	a, ok := r.agendas[companyID]
	if !ok {
		return nil, nil
	}
	return a, nil
}
func (r *fakeAgendaRepo) Update(a *entity.Agenda) error { r.agendas[a.CompanyID] = a; return nil }
func (r *fakeAgendaRepo) GetByCompanyForUpdate(companyID string) (*entity.Agenda, error) {
	return r.GetByCompany(companyID)
}

type fakeScheduleRepo struct {
	schedules []*entity.Schedule
}

func (r *fakeScheduleRepo) Create(s *entity.Schedule) error {
	r.schedules = append(r.schedules, s)
	return nil
}
func (r *fakeScheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	for _, s := range r.schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeScheduleRepo) ListByCompanyAndDay(companyID string, day time.Time) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range r.schedules {
		if s.CompanyID == companyID &&
			s.StartDate.UTC().Truncate(24*time.Hour).Equal(day.UTC().Truncate(24*time.Hour)) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeScheduleRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	for _, s := range r.schedules {
		if s.ID == id {
			s.Status = status
			s.UpdatedAt = updatedAt
		}
	}
	return nil
}

type fakeTxRunner struct {
	agendaRepo   repository.AgendaRepository
	scheduleRepo *fakeScheduleRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	agendaRepo repository.AgendaRepository,
	scheduleRepo repository.ScheduleRepository,
) error) error {
	return fn(t.agendaRepo, t.scheduleRepo)
}

func newFixture(maxCapacity int) (*schedule.UseCase, *fakeScheduleRepo) {
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		companyID: {ID: companyID, Name: "Termas del Sur", MaxCapacity: maxCapacity, Status: "active"},
	}}
	agendas := &fakeAgendaRepo{agendas: map[string]*entity.Agenda{
		companyID: {
			ID:            agendaID,
			CompanyID:     companyID,
			RangeMinutes:  60,
			BufferMinutes: 15,
			BusinessHours: map[string]entity.DayWindow{
				entity.DayMon: {Open: "09:00", Close: "12:00"},
			},
		},
	}}
	schedules := &fakeScheduleRepo{}
	uc := schedule.NewUseCase(
		&fakeTxRunner{agendaRepo: agendas, scheduleRepo: schedules},
		companies, agendas, schedules, nil, 7,
	)
	return uc, schedules
}

// ──────────────────────────────────────────────────────────────────────────────
// Disponibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableDates_DiaConDosTurnos(t *testing.T) {
	uc, _ := newFixture(10)

	dates, err := uc.AvailableDates(context.Background(), companyID, dto.AvailableDatesRequest{
		StartDate: "2024-03-04",
		ViewType:  "DAY",
	}, sunday)

	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, slot0915, dates[0])
	assert.Equal(t, slot1015, dates[1])
}

func TestAvailableDates_VistaVaciaEsDAY(t *testing.T) {
	uc, _ := newFixture(10)

	dates, err := uc.AvailableDates(context.Background(), companyID, dto.AvailableDatesRequest{
		StartDate: "2024-03-04",
	}, sunday)

	require.NoError(t, err)
	assert.Len(t, dates, 2)
}

func TestAvailableDates_VistaDesconocidaEsInvalida(t *testing.T) {
	uc, _ := newFixture(10)

	_, err := uc.AvailableDates(context.Background(), companyID, dto.AvailableDatesRequest{
		StartDate: "2024-03-04",
		ViewType:  "WEEK",
	}, sunday)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAvailableDates_FechaMalFormadaEsInvalida(t *testing.T) {
	uc, _ := newFixture(10)

	_, err := uc.AvailableDates(context.Background(), companyID, dto.AvailableDatesRequest{
		StartDate: "04/03/2024",
		ViewType:  "DAY",
	}, sunday)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reserva con revalidación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ReservaTurnoValido(t *testing.T) {
	uc, _ := newFixture(10)

	sched, err := uc.Create(context.Background(), companyID, dto.CreateScheduleRequest{
		StartDate:    slot0915,
		AdultsAmount: 2,
		KidsAmount:   1,
		Contact:      "María Pérez +56 9 1234 5678",
	}, sunday)

	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusPending, sched.Status)
	assert.Equal(t, slot0915, sched.StartDate)
	assert.Equal(t, slot0915.Add(60*time.Minute), sched.EndDate, "end = start + range")
	assert.Equal(t, 3, sched.PartySize())
}

func TestCreate_TurnoNoGenerableEsRechazado(t *testing.T) {
	uc, _ := newFixture(10)

	// 09:30 no pertenece a la secuencia 09:15, 10:15
	_, err := uc.Create(context.Background(), companyID, dto.CreateScheduleRequest{
		StartDate:    time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		AdultsAmount: 2,
		Contact:      "cliente",
	}, sunday)

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestCreate_TurnoPasadoEsRechazado(t *testing.T) {
	uc, _ := newFixture(10)

	// "ahora" es 09:30 del mismo lunes: 09:15 ya no es reservable
	now := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	_, err := uc.Create(context.Background(), companyID, dto.CreateScheduleRequest{
		StartDate:    slot0915,
		AdultsAmount: 1,
		Contact:      "cliente",
	}, now)

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestCreate_NoSobrevendeElAforo(t *testing.T) {
	// Aforo 10 con 8 ocupados: un grupo de 3 no entra, uno de 2 sí.
	uc, repo := newFixture(10)
	repo.schedules = append(repo.schedules, &entity.Schedule{
		ID: "prev", CompanyID: companyID, StartDate: slot0915,
		AdultsAmount: 8, Status: entity.ScheduleStatusPending,
	})

	_, err := uc.Create(context.Background(), companyID, dto.CreateScheduleRequest{
		StartDate:    slot1015,
		AdultsAmount: 2,
		KidsAmount:   1,
		Contact:      "grupo de tres",
	}, sunday)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	sched, err := uc.Create(context.Background(), companyID, dto.CreateScheduleRequest{
		StartDate:    slot1015,
		AdultsAmount: 2,
		Contact:      "grupo de dos",
	}, sunday)
	require.NoError(t, err)
	assert.Equal(t, 2, sched.PartySize())
}

func TestCreate_ReservasSecuencialesRespetanElAforo(t *testing.T) {
	// Dos reservas de 6 sobre aforo 10: la segunda revalida contra la primera
	// ya confirmada y es rechazada. Es el comportamiento que el lock de la
	// agenda garantiza también bajo concurrencia.
	uc, _ := newFixture(10)

	_, err := uc.Create(context.Background(), companyID, dto.CreateScheduleRequest{
		StartDate: slot0915, AdultsAmount: 6, Contact: "primera",
	}, sunday)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), companyID, dto.CreateScheduleRequest{
		StartDate: slot1015, AdultsAmount: 6, Contact: "segunda",
	}, sunday)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestCreate_GrupoVacioEsInvalido(t *testing.T) {
	uc, _ := newFixture(10)

	_, err := uc.Create(context.Background(), companyID, dto.CreateScheduleRequest{
		StartDate: slot0915, Contact: "sin gente",
	}, sunday)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aforo restante y transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRemainingCapacity_CanceladaLiberaCupo(t *testing.T) {
	uc, repo := newFixture(10)
	repo.schedules = append(repo.schedules,
		&entity.Schedule{ID: "a", CompanyID: companyID, StartDate: slot0915,
			AdultsAmount: 4, Status: entity.ScheduleStatusFinished},
		&entity.Schedule{ID: "b", CompanyID: companyID, StartDate: slot1015,
			AdultsAmount: 3, Status: entity.ScheduleStatusCanceled},
	)

	got, err := uc.RemainingCapacity(context.Background(), companyID, monday)

	require.NoError(t, err)
	assert.Equal(t, 6, got, "FINISHED consume aforo, CANCELED no")
}

func TestUpdateStatus_FlujoCompleto(t *testing.T) {
	uc, repo := newFixture(10)
	repo.schedules = append(repo.schedules, &entity.Schedule{
		ID: "s1", CompanyID: companyID, StartDate: slot0915,
		AdultsAmount: 2, Status: entity.ScheduleStatusPending,
	})
	now := sunday

	sched, err := uc.UpdateStatus(context.Background(), companyID, "s1", entity.ScheduleStatusReady, now)
	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusReady, sched.Status)

	sched, err = uc.UpdateStatus(context.Background(), companyID, "s1", entity.ScheduleStatusFinished, now)
	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusFinished, sched.Status)

	// FINISHED es terminal
	_, err = uc.UpdateStatus(context.Background(), companyID, "s1", entity.ScheduleStatusCanceled, now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_NoSePuedeSaltarAFinished(t *testing.T) {
	uc, repo := newFixture(10)
	repo.schedules = append(repo.schedules, &entity.Schedule{
		ID: "s1", CompanyID: companyID, StartDate: slot0915,
		AdultsAmount: 2, Status: entity.ScheduleStatusPending,
	})

	_, err := uc.UpdateStatus(context.Background(), companyID, "s1", entity.ScheduleStatusFinished, sunday)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_ReservaDeOtroTenantEsNotFound(t *testing.T) {
	uc, repo := newFixture(10)
	repo.schedules = append(repo.schedules, &entity.Schedule{
		ID: "s1", CompanyID: "otra-empresa", StartDate: slot0915,
		AdultsAmount: 2, Status: entity.ScheduleStatusPending,
	})

	_, err := uc.UpdateStatus(context.Background(), companyID, "s1", entity.ScheduleStatusReady, sunday)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
