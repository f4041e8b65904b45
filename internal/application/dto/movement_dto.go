package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements.
// ENTRY: inventory_item_id, quantity, cost opcional.
// EGRESS: inventory_item_id, quantity, reason.
// TRANSFER: inventory_item_id, quantity, destination_chamber_id, reason.
type RegisterMovementRequest struct {
	Type                 string           `json:"type"`
	InventoryItemID      string           `json:"inventory_item_id"`
	Quantity             int64            `json:"quantity"`
	Cost                 *decimal.Decimal `json:"cost,omitempty"`
	DestinationChamberID string           `json:"destination_chamber_id,omitempty"`
	Reason               string           `json:"reason,omitempty"`
}

// EntryBatchLine línea del carrito de entrada masiva.
type EntryBatchLine struct {
	InventoryItemID string           `json:"inventory_item_id"`
	Quantity        int64            `json:"quantity"`
	Cost            *decimal.Decimal `json:"cost,omitempty"`
}

// EntryBatchRequest body para POST /api/movements/entry-batch.
type EntryBatchRequest struct {
	Cart []EntryBatchLine `json:"cart"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID                   string           `json:"id"`
	CompanyID            string           `json:"company_id"`
	InventoryItemID      string           `json:"inventory_item_id"`
	Type                 string           `json:"type"`
	Quantity             int64            `json:"quantity"`
	Cost                 *decimal.Decimal `json:"cost,omitempty"`
	OriginChamberID      *string          `json:"origin_chamber_id,omitempty"`
	DestinationChamberID *string          `json:"destination_chamber_id,omitempty"`
	Reason               string           `json:"reason,omitempty"`
	CreatedBy            string           `json:"created_by"`
	CreatedAt            time.Time        `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
