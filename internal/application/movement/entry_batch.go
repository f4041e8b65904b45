package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// RegisterEntryBatch registra las entradas de un carrito completo: una
// validación previa de TODAS las líneas (artículo existente y del tenant,
// cantidad positiva, costo no negativo) y después una única transacción con
// un movimiento ENTRY por línea. La aplicación parcial está prohibida: o el
// carrito entero se confirma o nada se escribe.
func (uc *RegisterMovementUseCase) RegisterEntryBatch(
	ctx context.Context, companyID, userID string, cart []dto.EntryBatchLine,
) error {
	if len(cart) == 0 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.CompanyID != companyID {
		return domain.ErrNotFound
	}

	// Etapa de validación: ninguna escritura hasta que todas las líneas pasen
	for _, line := range cart {
		if line.InventoryItemID == "" || line.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if line.Cost != nil && line.Cost.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(line.InventoryItemID)
		if err != nil {
			return err
		}
		if item == nil || item.CompanyID != companyID {
			return domain.ErrNotFound
		}
	}

	now := time.Now().UTC()
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		itemRepo repository.InventoryItemRepository,
	) error {
		for _, line := range cart {
			if err := itemRepo.IncrementQuantity(line.InventoryItemID, line.Quantity); err != nil {
				return err
			}
			if line.Cost != nil {
				if err := itemRepo.UpdateCost(line.InventoryItemID, *line.Cost); err != nil {
					return err
				}
			}
			mov := &entity.Movement{
				ID:              uuid.New().String(),
				CompanyID:       companyID,
				InventoryItemID: line.InventoryItemID,
				Type:            entity.MovementTypeENTRY,
				Quantity:        line.Quantity,
				Cost:            line.Cost,
				CreatedBy:       userID,
				CreatedAt:       now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
}
