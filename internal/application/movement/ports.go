package movement

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta en el libro de
// movimientos y la mutación del artículo se confirmen o reviertan juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		itemRepo repository.InventoryItemRepository,
	) error) error
}
