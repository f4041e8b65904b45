package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeENTRY    = "ENTRY"    // entrada
	MovementTypeEGRESS   = "EGRESS"   // salida
	MovementTypeTRANSFER = "TRANSFER" // traslado entre cámaras
)

// Movement es una entrada del libro de movimientos (append-only: nunca se
// modifica ni borra después de creada). EGRESS y TRANSFER exigen Reason.
type Movement struct {
	ID                   string
	CompanyID            string
	InventoryItemID      string
	Type                 string
	Quantity             int64
	Cost                 *decimal.Decimal // solo entradas; nil si no se informó
	OriginChamberID      *string          // TRANSFER: cámara del artículo antes de mover
	DestinationChamberID *string          // TRANSFER: cámara destino
	Reason               string
	CreatedBy            string // UserID del actor
	CreatedAt            time.Time
}

// RequiresReason indica si el tipo de movimiento exige motivo no vacío.
func RequiresReason(movementType string) bool {
	return movementType == MovementTypeEGRESS || movementType == MovementTypeTRANSFER
}
