package wallet

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD. El saldo de la
// tarjeta y su libro de puntos se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cardRepo repository.WalletCardRepository,
		movRepo repository.WalletMovementRepository,
	) error) error
}
