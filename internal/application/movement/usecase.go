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

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional (ENTRY, EGRESS, TRANSFER). Los egresos aplican un decremento
// condicional (`quantity >= n`) en lugar de leer-verificar-escribir, y los
// traslados bloquean la fila del artículo para capturar la cámara de origen.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	itemRepo    repository.InventoryItemRepository
	chamberRepo repository.ChamberRepository
	userRepo    repository.UserRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	chamberRepo repository.ChamberRepository,
	userRepo repository.UserRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		itemRepo:    itemRepo,
		chamberRepo: chamberRepo,
		userRepo:    userRepo,
	}
}

// MovementInputDTO entrada para registrar un movimiento.
// ENTRY: InventoryItemID, Quantity>0, Cost opcional.
// EGRESS: InventoryItemID, Quantity>0, Reason obligatorio.
// TRANSFER: InventoryItemID, Quantity>0, DestinationChamberID y Reason obligatorios.
type MovementInputDTO struct {
	CompanyID            string
	UserID               string
	InventoryItemID      string
	Type                 string
	Quantity             int64
	Cost                 *decimal.Decimal
	DestinationChamberID string
	Reason               string
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(
	ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest,
) (*entity.Movement, error) {
	input := MovementInputDTO{
		CompanyID:            companyID,
		UserID:               userID,
		InventoryItemID:      in.InventoryItemID,
		Type:                 in.Type,
		Quantity:             in.Quantity,
		Cost:                 in.Cost,
		DestinationChamberID: in.DestinationChamberID,
		Reason:               in.Reason,
	}
	return uc.RegisterMovement(ctx, input)
}

// RegisterMovement valida la entrada, resuelve las referencias del tenant y
// aplica el movimiento dentro de una transacción (Commit si todo ok, Rollback
// si algo falla). Devuelve el movimiento persistido.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*entity.Movement, error) {
	// Validar tipo y campos antes de tocar nada
	switch input.Type {
	case entity.MovementTypeENTRY:
		if input.InventoryItemID == "" || input.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if input.Cost != nil && input.Cost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeEGRESS:
		if input.InventoryItemID == "" || input.Quantity <= 0 || input.Reason == "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeTRANSFER:
		if input.InventoryItemID == "" || input.Quantity <= 0 ||
			input.DestinationChamberID == "" || input.Reason == "" {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	// Resolver artículo, usuario y (para TRANSFER) cámara destino dentro del tenant
	item, err := uc.itemRepo.GetByID(input.InventoryItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != input.CompanyID {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != input.CompanyID {
		return nil, domain.ErrNotFound
	}
	if input.Type == entity.MovementTypeTRANSFER {
		dest, err := uc.chamberRepo.GetByID(input.DestinationChamberID)
		if err != nil {
			return nil, err
		}
		if dest == nil || dest.CompanyID != input.CompanyID {
			return nil, domain.ErrNotFound
		}
		if dest.ID == item.ChamberID {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now().UTC()
	var created *entity.Movement

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		itemRepo repository.InventoryItemRepository,
	) error {
		var txErr error
		switch input.Type {
		case entity.MovementTypeENTRY:
			created, txErr = uc.doENTRY(movRepo, itemRepo, input, now)
		case entity.MovementTypeEGRESS:
			created, txErr = uc.doEGRESS(movRepo, itemRepo, input, now)
		case entity.MovementTypeTRANSFER:
			created, txErr = uc.doTRANSFER(movRepo, itemRepo, input, now)
		}
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// doENTRY: suma la cantidad de forma atómica, actualiza el costo si se informó
// y deja el registro en el libro.
func (uc *RegisterMovementUseCase) doENTRY(
	movRepo repository.MovementRepository,
	itemRepo repository.InventoryItemRepository,
	input MovementInputDTO,
	now time.Time,
) (*entity.Movement, error) {
	if err := itemRepo.IncrementQuantity(input.InventoryItemID, input.Quantity); err != nil {
		return nil, err
	}
	if input.Cost != nil {
		if err := itemRepo.UpdateCost(input.InventoryItemID, *input.Cost); err != nil {
			return nil, err
		}
	}
	mov := &entity.Movement{
		ID:              uuid.New().String(),
		CompanyID:       input.CompanyID,
		InventoryItemID: input.InventoryItemID,
		Type:            entity.MovementTypeENTRY,
		Quantity:        input.Quantity,
		Cost:            input.Cost,
		CreatedBy:       input.UserID,
		CreatedAt:       now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// doEGRESS: decremento condicional `quantity = quantity - n WHERE quantity >= n`.
// Si ninguna fila fue afectada el stock era insuficiente y nada se mutó.
func (uc *RegisterMovementUseCase) doEGRESS(
	movRepo repository.MovementRepository,
	itemRepo repository.InventoryItemRepository,
	input MovementInputDTO,
	now time.Time,
) (*entity.Movement, error) {
	applied, err := itemRepo.DecrementQuantity(input.InventoryItemID, input.Quantity)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domain.ErrInsufficientStock
	}
	mov := &entity.Movement{
		ID:              uuid.New().String(),
		CompanyID:       input.CompanyID,
		InventoryItemID: input.InventoryItemID,
		Type:            entity.MovementTypeEGRESS,
		Quantity:        input.Quantity,
		Reason:          input.Reason,
		CreatedBy:       input.UserID,
		CreatedAt:       now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// doTRANSFER: bloquea la fila del artículo, captura la cámara de origen antes
// de mutar y reubica. La cantidad no cambia.
func (uc *RegisterMovementUseCase) doTRANSFER(
	movRepo repository.MovementRepository,
	itemRepo repository.InventoryItemRepository,
	input MovementInputDTO,
	now time.Time,
) (*entity.Movement, error) {
	item, err := itemRepo.GetForUpdate(input.InventoryItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.Quantity < input.Quantity {
		return nil, domain.ErrInsufficientStock
	}
	origin := item.ChamberID
	if origin == input.DestinationChamberID {
		return nil, domain.ErrInvalidInput
	}
	if err := itemRepo.UpdateChamber(input.InventoryItemID, input.DestinationChamberID); err != nil {
		return nil, err
	}
	dest := input.DestinationChamberID
	mov := &entity.Movement{
		ID:                   uuid.New().String(),
		CompanyID:            input.CompanyID,
		InventoryItemID:      input.InventoryItemID,
		Type:                 entity.MovementTypeTRANSFER,
		Quantity:             input.Quantity,
		OriginChamberID:      &origin,
		DestinationChamberID: &dest,
		Reason:               input.Reason,
		CreatedBy:            input.UserID,
		CreatedAt:            now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}
