package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ScheduleRepository define el puerto de persistencia para reservas.
type ScheduleRepository interface {
	Create(schedule *entity.Schedule) error
	GetByID(id string) (*entity.Schedule, error)
	// ListByCompanyAndDay devuelve las reservas cuyo start_date cae en el día UTC de day.
	ListByCompanyAndDay(companyID string, day time.Time) ([]*entity.Schedule, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
}
