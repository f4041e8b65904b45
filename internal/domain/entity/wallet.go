package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de una tarjeta de fidelidad.
const (
	WalletMovementCredit = "CREDIT"
	WalletMovementDebit  = "DEBIT"
)

// WalletCard es la tarjeta de fidelidad de un cliente final de la empresa.
// Points nunca baja de cero: los débitos se aplican con update condicional.
type WalletCard struct {
	ID        string
	CompanyID string
	Holder    string // nombre o contacto del cliente
	Contact   string
	Points    decimal.Decimal
	Status    string // active, blocked
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WalletMovement es una entrada del libro de puntos (append-only).
type WalletMovement struct {
	ID         string
	CompanyID  string
	CardID     string
	Type       string // CREDIT | DEBIT
	Points     decimal.Decimal
	Reason     string
	CreatedBy  string
	CreatedAt  time.Time
}
