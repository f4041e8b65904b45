package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// WalletCardRepository define el puerto de persistencia para tarjetas de fidelidad.
type WalletCardRepository interface {
	Create(card *entity.WalletCard) error
	GetByID(id string) (*entity.WalletCard, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.WalletCard, error)
	// CreditPoints suma puntos de forma atómica.
	CreditPoints(id string, points decimal.Decimal) error
	// DebitPoints aplica `points = points - n WHERE points >= n` y reporta si
	// alguna fila fue afectada; false = saldo insuficiente, sin mutación.
	DebitPoints(id string, points decimal.Decimal) (bool, error)
}

// WalletMovementRepository define el puerto del libro de puntos (append-only).
type WalletMovementRepository interface {
	Create(movement *entity.WalletMovement) error
	ListByCard(cardID string, limit, offset int) ([]*entity.WalletMovement, error)
}
