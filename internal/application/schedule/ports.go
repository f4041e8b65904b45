package schedule

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La reserva toma el lock de la fila de la
// agenda (FOR UPDATE) dentro de esta transacción, de modo que dos reservas
// concurrentes del mismo tenant se serializan y la segunda revalida turno y
// aforo contra el estado ya confirmado por la primera.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		agendaRepo repository.AgendaRepository,
		scheduleRepo repository.ScheduleRepository,
	) error) error
}

// PDFGenerator produce el reporte imprimible de la agenda de un día.
type PDFGenerator interface {
	DayAgendaReport(company *entity.Company, day time.Time, schedules []*entity.Schedule) ([]byte, error)
}
