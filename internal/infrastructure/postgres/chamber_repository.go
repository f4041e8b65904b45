package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.ChamberRepository = (*ChamberRepo)(nil)

// ChamberRepo implementación del puerto ChamberRepository sobre PostgreSQL (usable con pool o tx).
type ChamberRepo struct {
	q Querier
}

// NewChamberRepository construye el adaptador de persistencia para cámaras. Pasar pool o tx (Querier).
func NewChamberRepository(q Querier) *ChamberRepo {
	return &ChamberRepo{q: q}
}

// Create persiste una nueva cámara.
func (r *ChamberRepo) Create(chamber *entity.Chamber) error {
	query := `
		INSERT INTO chambers (id, company_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		chamber.ID, chamber.CompanyID, chamber.Name, chamber.CreatedAt, chamber.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chamber: %w", err)
	}
	return nil
}

// GetByID obtiene una cámara por ID.
func (r *ChamberRepo) GetByID(id string) (*entity.Chamber, error) {
	query := `SELECT id, company_id, name, created_at, updated_at FROM chambers WHERE id = $1`
	var c entity.Chamber
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chamber: %w", err)
	}
	return &c, nil
}

// Update actualiza una cámara existente.
func (r *ChamberRepo) Update(chamber *entity.Chamber) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE chambers SET name = $2, updated_at = $3 WHERE id = $1`,
		chamber.ID, chamber.Name, chamber.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update chamber: %w", err)
	}
	return nil
}

// ListByCompany lista cámaras por empresa con paginación.
func (r *ChamberRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Chamber, error) {
	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM chambers WHERE company_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list chambers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chamber
	for rows.Next() {
		var c entity.Chamber
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chamber: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una cámara por ID.
func (r *ChamberRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM chambers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chamber: %w", err)
	}
	return nil
}
