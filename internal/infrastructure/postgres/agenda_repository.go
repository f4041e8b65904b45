package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.AgendaRepository = (*AgendaRepo)(nil)

// AgendaRepo implementación del puerto AgendaRepository sobre PostgreSQL.
// BusinessHours se persiste como JSONB ({"MON": {"open": "09:00", "close": "12:00"}, ...}).
type AgendaRepo struct {
	q Querier
}

// NewAgendaRepository construye el adaptador de persistencia de agendas. Pasar pool o tx (Querier).
func NewAgendaRepository(q Querier) *AgendaRepo {
	return &AgendaRepo{q: q}
}

// Create persiste la configuración de agenda de una empresa (una por tenant).
func (r *AgendaRepo) Create(agenda *entity.Agenda) error {
	hours, err := json.Marshal(agenda.BusinessHours)
	if err != nil {
		return fmt.Errorf("marshal business_hours: %w", err)
	}
	query := `
		INSERT INTO agendas (id, company_id, name, range_minutes, buffer_minutes, business_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		agenda.ID, agenda.CompanyID, agenda.Name, agenda.RangeMinutes,
		agenda.BufferMinutes, hours, agenda.CreatedAt, agenda.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agenda: %w", err)
	}
	return nil
}

// GetByCompany obtiene la agenda del tenant.
func (r *AgendaRepo) GetByCompany(companyID string) (*entity.Agenda, error) {
	query := `
		SELECT id, company_id, name, range_minutes, buffer_minutes, business_hours, created_at, updated_at
		FROM agendas WHERE company_id = $1`
	return r.scanOne(query, companyID)
}

// GetByCompanyForUpdate bloquea la fila de la agenda (SELECT FOR UPDATE).
// Dentro de una transacción serializa las reservas concurrentes del tenant.
func (r *AgendaRepo) GetByCompanyForUpdate(companyID string) (*entity.Agenda, error) {
	query := `
		SELECT id, company_id, name, range_minutes, buffer_minutes, business_hours, created_at, updated_at
		FROM agendas WHERE company_id = $1 FOR UPDATE`
	return r.scanOne(query, companyID)
}

// Update actualiza la configuración de agenda.
func (r *AgendaRepo) Update(agenda *entity.Agenda) error {
	hours, err := json.Marshal(agenda.BusinessHours)
	if err != nil {
		return fmt.Errorf("marshal business_hours: %w", err)
	}
	query := `
		UPDATE agendas SET name = $2, range_minutes = $3, buffer_minutes = $4, business_hours = $5, updated_at = $6
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		agenda.ID, agenda.Name, agenda.RangeMinutes, agenda.BufferMinutes, hours, agenda.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agenda: %w", err)
	}
	return nil
}

func (r *AgendaRepo) scanOne(query string, args ...any) (*entity.Agenda, error) {
	var a entity.Agenda
	var hours []byte
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&a.ID, &a.CompanyID, &a.Name, &a.RangeMinutes, &a.BufferMinutes,
		&hours, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agenda: %w", err)
	}
	if err := json.Unmarshal(hours, &a.BusinessHours); err != nil {
		return nil, fmt.Errorf("unmarshal business_hours: %w", err)
	}
	return &a, nil
}
