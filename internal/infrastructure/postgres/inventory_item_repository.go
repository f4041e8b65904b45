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
	"github.com/jhoicas/Gestion-api/pkg/textutil"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre
// PostgreSQL (usable con pool o tx). La columna description_normalized guarda
// la descripción sin acentos y en minúsculas para la búsqueda.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `id, company_id, chamber_id, description, gtin, quantity, min_quantity, weight, cost, created_at, updated_at`

// Create persiste un nuevo artículo. Devuelve ErrDuplicate si el GTIN ya existe en la empresa.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, company_id, chamber_id, description, description_normalized, gtin, quantity, min_quantity, weight, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.ChamberID, item.Description,
		textutil.NormalizeSearchTerm(item.Description), item.GTIN,
		item.Quantity, item.MinQuantity, item.Weight, item.Cost,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.scanOne(`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id)
}

// GetByGTIN obtiene un artículo por empresa y código de barras.
func (r *InventoryItemRepo) GetByGTIN(companyID, gtin string) (*entity.InventoryItem, error) {
	return r.scanOne(`SELECT `+itemColumns+` FROM inventory_items WHERE company_id = $1 AND gtin = $2`, companyID, gtin)
}

// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) dentro de una tx.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.scanOne(`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
}

// Update actualiza los campos editables. GTIN y quantity no se tocan acá:
// el GTIN es inmutable y quantity solo cambia por movimientos.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET description = $2, description_normalized = $3, min_quantity = $4, weight = $5, cost = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Description, textutil.NormalizeSearchTerm(item.Description),
		item.MinQuantity, item.Weight, item.Cost, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// IncrementQuantity suma quantity de forma atómica.
func (r *InventoryItemRepo) IncrementQuantity(id string, quantity int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET quantity = quantity + $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("increment quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementQuantity aplica el decremento condicional: la cláusula
// `quantity >= $2` garantiza que el stock nunca queda negativo aun con egresos
// concurrentes; RowsAffected = 0 significa stock insuficiente sin mutación.
func (r *InventoryItemRepo) DecrementQuantity(id string, quantity int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET quantity = quantity - $2, updated_at = now() WHERE id = $1 AND quantity >= $2`,
		id, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement quantity: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateChamber reubica el artículo en otra cámara.
func (r *InventoryItemRepo) UpdateChamber(id, chamberID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET chamber_id = $2, updated_at = now() WHERE id = $1`,
		id, chamberID,
	)
	if err != nil {
		return fmt.Errorf("update item chamber: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCost actualiza solo el costo del artículo (entradas con costo informado).
func (r *InventoryItemRepo) UpdateCost(id string, cost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET cost = $2, updated_at = now() WHERE id = $1`,
		id, cost,
	)
	if err != nil {
		return fmt.Errorf("update item cost: %w", err)
	}
	return nil
}

// ListByCompany lista artículos por empresa con paginación.
func (r *InventoryItemRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items WHERE company_id = $1 ORDER BY description ASC LIMIT $2 OFFSET $3`
	return r.scanMany(query, companyID, limit, offset)
}

// Search busca por descripción normalizada (sin acentos, case-insensitive).
// El término ya llega normalizado desde la aplicación.
func (r *InventoryItemRepo) Search(companyID, normalizedTerm string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE company_id = $1 AND description_normalized LIKE '%' || $2 || '%'
		ORDER BY description ASC LIMIT $3 OFFSET $4`
	return r.scanMany(query, companyID, normalizedTerm, limit, offset)
}

// ListBelowMinimum devuelve artículos con quantity <= min_quantity.
func (r *InventoryItemRepo) ListBelowMinimum(companyID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE company_id = $1 AND quantity <= min_quantity
		ORDER BY (min_quantity - quantity) DESC`
	return r.scanMany(query, companyID)
}

// Delete elimina un artículo por ID.
func (r *InventoryItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) scanOne(query string, args ...any) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.CompanyID, &i.ChamberID, &i.Description, &i.GTIN,
		&i.Quantity, &i.MinQuantity, &i.Weight, &i.Cost, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &i, nil
}

func (r *InventoryItemRepo) scanMany(query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var i entity.InventoryItem
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.ChamberID, &i.Description, &i.GTIN,
			&i.Quantity, &i.MinQuantity, &i.Weight, &i.Cost, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
