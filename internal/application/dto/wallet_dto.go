package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWalletCardRequest entrada para emitir una tarjeta de fidelidad.
type CreateWalletCardRequest struct {
	Holder  string `json:"holder" validate:"required,min=1,max=200"`
	Contact string `json:"contact"`
}

// WalletPointsRequest body para acreditar o debitar puntos.
type WalletPointsRequest struct {
	Points decimal.Decimal `json:"points"`
	Reason string          `json:"reason"`
}

// WalletCardResponse salida de una tarjeta.
type WalletCardResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Holder    string          `json:"holder"`
	Contact   string          `json:"contact"`
	Points    decimal.Decimal `json:"points"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletCardListResponse lista paginada de tarjetas.
type WalletCardListResponse struct {
	Items []WalletCardResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// WalletMovementResponse entrada del libro de puntos.
type WalletMovementResponse struct {
	ID        string          `json:"id"`
	CardID    string          `json:"card_id"`
	Type      string          `json:"type"`
	Points    decimal.Decimal `json:"points"`
	Reason    string          `json:"reason"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}
