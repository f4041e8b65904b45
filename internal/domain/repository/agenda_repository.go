package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// AgendaRepository define el puerto de persistencia para Agenda (una por empresa).
type AgendaRepository interface {
	Create(agenda *entity.Agenda) error
	GetByCompany(companyID string) (*entity.Agenda, error)
	Update(agenda *entity.Agenda) error
	// GetByCompanyForUpdate bloquea la fila de la agenda (SELECT FOR UPDATE) para
	// serializar las reservas concurrentes del tenant dentro de una transacción.
	GetByCompanyForUpdate(companyID string) (*entity.Agenda, error)
}
