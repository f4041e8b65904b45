package wallet

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

// UseCase administra las tarjetas de fidelidad y su libro de puntos. Sigue el
// mismo patrón que el libro de inventario: mutación de saldo y alta en el
// libro dentro de una transacción, con débito condicional para que el saldo
// nunca quede negativo.
type UseCase struct {
	txRunner TxRunner
	cardRepo repository.WalletCardRepository
	movRepo  repository.WalletMovementRepository
}

// NewUseCase construye el caso de uso de fidelidad.
func NewUseCase(
	txRunner TxRunner,
	cardRepo repository.WalletCardRepository,
	movRepo repository.WalletMovementRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, cardRepo: cardRepo, movRepo: movRepo}
}

// CreateCard emite una tarjeta nueva con saldo cero.
func (uc *UseCase) CreateCard(_ context.Context, companyID string, req dto.CreateWalletCardRequest) (*entity.WalletCard, error) {
	if req.Holder == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	card := &entity.WalletCard{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Holder:    req.Holder,
		Contact:   req.Contact,
		Points:    decimal.Zero,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.cardRepo.Create(card); err != nil {
		return nil, err
	}
	return card, nil
}

// GetCard devuelve una tarjeta del tenant.
func (uc *UseCase) GetCard(_ context.Context, companyID, cardID string) (*entity.WalletCard, error) {
	return uc.resolveCard(companyID, cardID)
}

// ListCards lista las tarjetas de la empresa.
func (uc *UseCase) ListCards(_ context.Context, companyID string, limit, offset int) ([]*entity.WalletCard, error) {
	return uc.cardRepo.ListByCompany(companyID, limit, offset)
}

// Credit acredita puntos y registra el movimiento CREDIT, atómicamente.
func (uc *UseCase) Credit(
	ctx context.Context, companyID, userID, cardID string, req dto.WalletPointsRequest,
) (*entity.WalletMovement, error) {
	return uc.applyPoints(ctx, companyID, userID, cardID, entity.WalletMovementCredit, req)
}

// Debit descuenta puntos con update condicional (`points >= n`); si el saldo
// no alcanza devuelve ErrInsufficientPoints sin mutar nada.
func (uc *UseCase) Debit(
	ctx context.Context, companyID, userID, cardID string, req dto.WalletPointsRequest,
) (*entity.WalletMovement, error) {
	return uc.applyPoints(ctx, companyID, userID, cardID, entity.WalletMovementDebit, req)
}

// Movements lista el libro de puntos de una tarjeta.
func (uc *UseCase) Movements(
	_ context.Context, companyID, cardID string, limit, offset int,
) ([]*entity.WalletMovement, error) {
	if _, err := uc.resolveCard(companyID, cardID); err != nil {
		return nil, err
	}
	return uc.movRepo.ListByCard(cardID, limit, offset)
}

func (uc *UseCase) applyPoints(
	ctx context.Context, companyID, userID, cardID, movType string, req dto.WalletPointsRequest,
) (*entity.WalletMovement, error) {
	if req.Points.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	card, err := uc.resolveCard(companyID, cardID)
	if err != nil {
		return nil, err
	}
	if card.Status != "active" {
		return nil, domain.ErrConflict
	}

	now := time.Now().UTC()
	mov := &entity.WalletMovement{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		CardID:    cardID,
		Type:      movType,
		Points:    req.Points,
		Reason:    req.Reason,
		CreatedBy: userID,
		CreatedAt: now,
	}
	err = uc.txRunner.Run(ctx, func(
		cardRepo repository.WalletCardRepository,
		movRepo repository.WalletMovementRepository,
	) error {
		if movType == entity.WalletMovementCredit {
			if err := cardRepo.CreditPoints(cardID, req.Points); err != nil {
				return err
			}
		} else {
			applied, err := cardRepo.DebitPoints(cardID, req.Points)
			if err != nil {
				return err
			}
			if !applied {
				return domain.ErrInsufficientPoints
			}
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

func (uc *UseCase) resolveCard(companyID, cardID string) (*entity.WalletCard, error) {
	card, err := uc.cardRepo.GetByID(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil || card.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return card, nil
}
