package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para artículos.
// Las mutaciones de cantidad son condicionales/atómicas para soportar
// movimientos concurrentes sin chequeos sobre lecturas obsoletas.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetByGTIN(companyID, gtin string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.InventoryItem, error)
	// Search busca por descripción normalizada (sin acentos, case-insensitive).
	Search(companyID, normalizedTerm string, limit, offset int) ([]*entity.InventoryItem, error)
	// ListBelowMinimum devuelve artículos con quantity <= min_quantity.
	ListBelowMinimum(companyID string) ([]*entity.InventoryItem, error)
	Delete(id string) error

	// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.InventoryItem, error)
	// IncrementQuantity suma quantity de forma atómica.
	IncrementQuantity(id string, quantity int64) error
	// DecrementQuantity aplica `quantity = quantity - n WHERE quantity >= n` y
	// reporta si alguna fila fue afectada; false significa stock insuficiente
	// (o carrera perdida) sin haber mutado nada.
	DecrementQuantity(id string, quantity int64) (bool, error)
	// UpdateChamber reubica el artículo en otra cámara.
	UpdateChamber(id, chamberID string) error
	// UpdateCost actualiza el costo del artículo (entradas con costo informado).
	UpdateCost(id string, cost decimal.Decimal) error
}
