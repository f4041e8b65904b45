package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos (append-only:
// no expone update ni delete).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
}
