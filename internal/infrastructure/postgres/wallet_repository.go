package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.WalletCardRepository = (*WalletCardRepo)(nil)
var _ repository.WalletMovementRepository = (*WalletMovementRepo)(nil)

// WalletCardRepo implementación del puerto WalletCardRepository sobre PostgreSQL (usable con pool o tx).
type WalletCardRepo struct {
	q Querier
}

// NewWalletCardRepository construye el adaptador de persistencia para tarjetas. Pasar pool o tx (Querier).
func NewWalletCardRepository(q Querier) *WalletCardRepo {
	return &WalletCardRepo{q: q}
}

const walletCardColumns = `id, company_id, holder, contact, points, status, created_at, updated_at`

// Create persiste una nueva tarjeta.
func (r *WalletCardRepo) Create(card *entity.WalletCard) error {
	query := `
		INSERT INTO wallet_cards (` + walletCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		card.ID, card.CompanyID, card.Holder, card.Contact, card.Points,
		card.Status, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet card: %w", err)
	}
	return nil
}

// GetByID obtiene una tarjeta por ID.
func (r *WalletCardRepo) GetByID(id string) (*entity.WalletCard, error) {
	query := `SELECT ` + walletCardColumns + ` FROM wallet_cards WHERE id = $1`
	var c entity.WalletCard
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Holder, &c.Contact, &c.Points,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet card: %w", err)
	}
	return &c, nil
}

// ListByCompany lista tarjetas por empresa con paginación.
func (r *WalletCardRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.WalletCard, error) {
	query := `
		SELECT ` + walletCardColumns + `
		FROM wallet_cards WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list wallet cards: %w", err)
	}
	defer rows.Close()
	var list []*entity.WalletCard
	for rows.Next() {
		var c entity.WalletCard
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Holder, &c.Contact, &c.Points,
			&c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet card: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CreditPoints suma puntos de forma atómica.
func (r *WalletCardRepo) CreditPoints(id string, points decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE wallet_cards SET points = points + $2, updated_at = now() WHERE id = $1`,
		id, points,
	)
	if err != nil {
		return fmt.Errorf("credit points: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DebitPoints aplica `points = points - n WHERE points >= n`; RowsAffected = 0
// significa saldo insuficiente sin mutación.
func (r *WalletCardRepo) DebitPoints(id string, points decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE wallet_cards SET points = points - $2, updated_at = now() WHERE id = $1 AND points >= $2`,
		id, points,
	)
	if err != nil {
		return false, fmt.Errorf("debit points: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// WalletMovementRepo implementación del puerto WalletMovementRepository sobre
// PostgreSQL. Libro append-only, como el de inventario.
type WalletMovementRepo struct {
	q Querier
}

// NewWalletMovementRepository construye el adaptador del libro de puntos. Pasar pool o tx (Querier).
func NewWalletMovementRepository(q Querier) *WalletMovementRepo {
	return &WalletMovementRepo{q: q}
}

// Create agrega una entrada al libro de puntos.
func (r *WalletMovementRepo) Create(movement *entity.WalletMovement) error {
	query := `
		INSERT INTO wallet_movements (id, company_id, card_id, type, points, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.CardID, movement.Type,
		movement.Points, movement.Reason, movement.CreatedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet movement: %w", err)
	}
	return nil
}

// ListByCard lista el libro de puntos de una tarjeta, más recientes primero.
func (r *WalletMovementRepo) ListByCard(cardID string, limit, offset int) ([]*entity.WalletMovement, error) {
	query := `
		SELECT id, company_id, card_id, type, points, reason, created_by, created_at
		FROM wallet_movements WHERE card_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, cardID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list wallet movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.WalletMovement
	for rows.Next() {
		var m entity.WalletMovement
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.CardID, &m.Type, &m.Points,
			&m.Reason, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
