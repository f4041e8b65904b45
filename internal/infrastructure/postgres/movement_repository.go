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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El libro es append-only: solo INSERT y SELECT, nunca UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia del libro de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, company_id, inventory_item_id, type, quantity, cost, origin_chamber_id, destination_chamber_id, reason, created_by, created_at`

// Create agrega una entrada al libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.InventoryItemID, movement.Type,
		movement.Quantity, movement.Cost, movement.OriginChamberID, movement.DestinationChamberID,
		movement.Reason, movement.CreatedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada del libro por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.InventoryItemID, &m.Type, &m.Quantity, &m.Cost,
		&m.OriginChamberID, &m.DestinationChamberID, &m.Reason, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByItem lista los movimientos de un artículo, más recientes primero,
// con filtro opcional de rango de fechas.
func (r *MovementRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE inventory_item_id = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	return r.scanMany(query, itemID, from, to, limit, offset)
}

// ListByCompany lista los movimientos de la empresa, más recientes primero,
// con filtro opcional de rango de fechas.
func (r *MovementRepo) ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE company_id = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	return r.scanMany(query, companyID, from, to, limit, offset)
}

func (r *MovementRepo) scanMany(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.InventoryItemID, &m.Type, &m.Quantity, &m.Cost,
			&m.OriginChamberID, &m.DestinationChamberID, &m.Reason, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
