package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/agenda"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// UseCase concentra las operaciones de agenda: disponibilidad, aforo restante,
// alta de reservas con revalidación transaccional y transiciones de estado.
// Los métodos reciben `now` explícito; los handlers pasan time.Now().UTC().
type UseCase struct {
	txRunner     TxRunner
	companyRepo  repository.CompanyRepository
	agendaRepo   repository.AgendaRepository
	scheduleRepo repository.ScheduleRepository
	pdf          PDFGenerator
	viewDays     int // N de la vista NEXT_N_DAYS (config AGENDA_VIEW_DAYS)
}

// NewUseCase construye el caso de uso de agenda.
func NewUseCase(
	txRunner TxRunner,
	companyRepo repository.CompanyRepository,
	agendaRepo repository.AgendaRepository,
	scheduleRepo repository.ScheduleRepository,
	pdf PDFGenerator,
	viewDays int,
) *UseCase {
	if viewDays <= 0 {
		viewDays = 7
	}
	return &UseCase{
		txRunner:     txRunner,
		companyRepo:  companyRepo,
		agendaRepo:   agendaRepo,
		scheduleRepo: scheduleRepo,
		pdf:          pdf,
		viewDays:     viewDays,
	}
}

// parseRefDate interpreta la fecha de referencia del query param: RFC 3339 o
// YYYY-MM-DD; vacía usa `now`. Siempre normalizada a UTC.
func parseRefDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t.UTC(), nil
}

// AvailableDates devuelve los horarios de inicio reservables según la vista
// pedida (DAY, MONTH o NEXT_N_DAYS), en orden ascendente.
func (uc *UseCase) AvailableDates(
	_ context.Context, companyID string, req dto.AvailableDatesRequest, now time.Time,
) ([]time.Time, error) {
	view, ok := agenda.ParseViewType(req.ViewType)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	ref, err := parseRefDate(req.StartDate, now)
	if err != nil {
		return nil, err
	}
	cfg, err := uc.agendaConfig(companyID)
	if err != nil {
		return nil, err
	}
	return agenda.AvailableSlots(cfg, ref, view, uc.viewDays, now.UTC()), nil
}

// RemainingCapacity devuelve el aforo restante del día UTC de `day`.
// FINISHED sigue consumiendo aforo; solo CANCELED lo libera.
func (uc *UseCase) RemainingCapacity(_ context.Context, companyID string, day time.Time) (int, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return 0, err
	}
	if company == nil {
		return 0, domain.ErrNotFound
	}
	reservations, err := uc.scheduleRepo.ListByCompanyAndDay(companyID, day.UTC())
	if err != nil {
		return 0, err
	}
	return agenda.RemainingCapacity(company.MaxCapacity, reservations, day.UTC()), nil
}

// Create registra una reserva. Todo se revalida DENTRO de la transacción, con
// la fila de la agenda bloqueada: el turno debe seguir siendo generable por la
// configuración vigente (ErrSlotUnavailable si no) y el grupo debe caber en el
// aforo restante del día (ErrCapacityExceeded si no). La reserva nace PENDING
// con EndDate = StartDate + RangeMinutes.
func (uc *UseCase) Create(
	ctx context.Context, companyID string, req dto.CreateScheduleRequest, now time.Time,
) (*entity.Schedule, error) {
	partySize := req.AdultsAmount + req.KidsAmount
	if partySize <= 0 || req.AdultsAmount < 0 || req.KidsAmount < 0 || req.Contact == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	start := req.StartDate.UTC()
	now = now.UTC()
	var created *entity.Schedule

	err = uc.txRunner.Run(ctx, func(
		agendaRepo repository.AgendaRepository,
		scheduleRepo repository.ScheduleRepository,
	) error {
		// Lock de la agenda del tenant: serializa las reservas concurrentes
		ag, err := agendaRepo.GetByCompanyForUpdate(companyID)
		if err != nil {
			return err
		}
		if ag == nil {
			return domain.ErrNotFound
		}
		cfg, err := agenda.ConfigFrom(ag)
		if err != nil {
			return err
		}
		if !agenda.ContainsSlot(cfg, start, now) {
			return domain.ErrSlotUnavailable
		}
		reservations, err := scheduleRepo.ListByCompanyAndDay(companyID, start)
		if err != nil {
			return err
		}
		if !agenda.CanAccommodate(company.MaxCapacity, reservations, start, partySize) {
			return domain.ErrCapacityExceeded
		}
		created = &entity.Schedule{
			ID:             uuid.New().String(),
			CompanyID:      companyID,
			AgendaID:       ag.ID,
			StartDate:      start,
			EndDate:        agenda.AddMinutes(start, cfg.RangeMinutes),
			AdultsAmount:   req.AdultsAmount,
			KidsAmount:     req.KidsAmount,
			Contact:        req.Contact,
			AdditionalInfo: req.AdditionalInfo,
			Status:         entity.ScheduleStatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return scheduleRepo.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListByDay devuelve las reservas del día UTC indicado (todas, incluidas las
// canceladas: la vista del personal muestra el día completo).
func (uc *UseCase) ListByDay(_ context.Context, companyID string, day time.Time) ([]*entity.Schedule, error) {
	return uc.scheduleRepo.ListByCompanyAndDay(companyID, day.UTC())
}

// UpdateStatus aplica una transición de estado del personal. Solo avanza
// (PENDING→READY→FINISHED) o cancela; cualquier otro salto es ErrInvalidTransition.
func (uc *UseCase) UpdateStatus(
	_ context.Context, companyID, scheduleID, status string, now time.Time,
) (*entity.Schedule, error) {
	switch status {
	case entity.ScheduleStatusReady, entity.ScheduleStatusFinished, entity.ScheduleStatusCanceled:
	default:
		return nil, domain.ErrInvalidInput
	}
	sched, err := uc.scheduleRepo.GetByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if sched == nil || sched.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if !sched.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}
	now = now.UTC()
	if err := uc.scheduleRepo.UpdateStatus(scheduleID, status, now); err != nil {
		return nil, err
	}
	sched.Status = status
	sched.UpdatedAt = now
	return sched, nil
}

// DayReportPDF genera el reporte imprimible de la agenda del día.
func (uc *UseCase) DayReportPDF(_ context.Context, companyID string, day time.Time) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	schedules, err := uc.scheduleRepo.ListByCompanyAndDay(companyID, day.UTC())
	if err != nil {
		return nil, err
	}
	return uc.pdf.DayAgendaReport(company, day.UTC(), schedules)
}

// agendaConfig resuelve la agenda del tenant y la compila a la configuración
// pura de generación de turnos.
func (uc *UseCase) agendaConfig(companyID string) (agenda.Config, error) {
	ag, err := uc.agendaRepo.GetByCompany(companyID)
	if err != nil {
		return agenda.Config{}, err
	}
	if ag == nil {
		return agenda.Config{}, domain.ErrNotFound
	}
	return agenda.ConfigFrom(ag)
}
