package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo implementación del puerto ScheduleRepository sobre PostgreSQL (usable con pool o tx).
type ScheduleRepo struct {
	q Querier
}

// NewScheduleRepository construye el adaptador de persistencia para reservas. Pasar pool o tx (Querier).
func NewScheduleRepository(q Querier) *ScheduleRepo {
	return &ScheduleRepo{q: q}
}

const scheduleColumns = `id, company_id, agenda_id, start_date, end_date, adults_amount, kids_amount, contact, additional_info, status, created_at, updated_at`

// Create persiste una nueva reserva.
func (r *ScheduleRepo) Create(schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		schedule.ID, schedule.CompanyID, schedule.AgendaID, schedule.StartDate, schedule.EndDate,
		schedule.AdultsAmount, schedule.KidsAmount, schedule.Contact, schedule.AdditionalInfo,
		schedule.Status, schedule.CreatedAt, schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *ScheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`
	var s entity.Schedule
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.AgendaID, &s.StartDate, &s.EndDate,
		&s.AdultsAmount, &s.KidsAmount, &s.Contact, &s.AdditionalInfo,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return &s, nil
}

// ListByCompanyAndDay devuelve las reservas cuyo start_date cae en el día UTC de day,
// ordenadas por horario de inicio.
func (r *ScheduleRepo) ListByCompanyAndDay(companyID string, day time.Time) ([]*entity.Schedule, error) {
	dayStart := time.Date(day.UTC().Year(), day.UTC().Month(), day.UTC().Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE company_id = $1 AND start_date >= $2 AND start_date < $3
		ORDER BY start_date ASC`
	rows, err := r.q.Query(context.Background(), query, companyID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Schedule
	for rows.Next() {
		var s entity.Schedule
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.AgendaID, &s.StartDate, &s.EndDate,
			&s.AdultsAmount, &s.KidsAmount, &s.Contact, &s.AdditionalInfo,
			&s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza el estado de una reserva.
func (r *ScheduleRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE schedules SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update schedule status: %w", err)
	}
	return nil
}
