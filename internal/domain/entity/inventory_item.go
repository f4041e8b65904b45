package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo de inventario almacenado en una cámara.
// GTIN es inmutable después de la creación; Quantity nunca puede ser negativa
// (CHECK en la tabla + update condicional en egresos).
type InventoryItem struct {
	ID          string
	CompanyID   string
	ChamberID   string
	Description string
	GTIN        string // código de barras, único por empresa
	Quantity    int64
	MinQuantity int64 // umbral de reposición
	Weight      decimal.Decimal
	Cost        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowMinimum indica si el artículo está en o por debajo de su umbral de reposición.
func (i *InventoryItem) BelowMinimum() bool {
	return i.Quantity <= i.MinQuantity
}
