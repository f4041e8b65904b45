package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ChamberRepository define el puerto de persistencia para cámaras de almacenamiento.
type ChamberRepository interface {
	Create(chamber *entity.Chamber) error
	GetByID(id string) (*entity.Chamber, error)
	Update(chamber *entity.Chamber) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Chamber, error)
	Delete(id string) error
}
