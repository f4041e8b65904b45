package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo de inventario.
type CreateItemRequest struct {
	ChamberID   string          `json:"chamber_id" validate:"required,uuid4"`
	Description string          `json:"description" validate:"required,min=1,max=300"`
	GTIN        string          `json:"gtin" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	MinQuantity int64           `json:"min_quantity" validate:"min=0"`
	Weight      decimal.Decimal `json:"weight"`
	Cost        decimal.Decimal `json:"cost"`
}

// UpdateItemRequest entrada para actualizar un artículo (GTIN inmutable).
type UpdateItemRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=1,max=300"`
	MinQuantity *int64           `json:"min_quantity" validate:"omitempty,min=0"`
	Weight      *decimal.Decimal `json:"weight"`
	Cost        *decimal.Decimal `json:"cost"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	ChamberID   string          `json:"chamber_id"`
	Description string          `json:"description"`
	GTIN        string          `json:"gtin"`
	Quantity    int64           `json:"quantity"`
	MinQuantity int64           `json:"min_quantity"`
	Weight      decimal.Decimal `json:"weight"`
	Cost        decimal.Decimal `json:"cost"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LowStockItemDTO artículo en o bajo su umbral de reposición.
type LowStockItemDTO struct {
	ItemID      string `json:"item_id"`
	Description string `json:"description"`
	GTIN        string `json:"gtin"`
	ChamberID   string `json:"chamber_id"`
	Quantity    int64  `json:"quantity"`
	MinQuantity int64  `json:"min_quantity"`
	Deficit     int64  `json:"deficit"`  // min_quantity - quantity (>= 0)
	Priority    int    `json:"priority"` // 1 = más urgente
}
