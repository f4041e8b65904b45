package agenda_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/agenda"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

func reserva(day time.Time, adults, kids int, status string) *entity.Schedule {
	return &entity.Schedule{
		StartDate:    day.Add(10 * time.Hour),
		AdultsAmount: adults,
		KidsAmount:   kids,
		Status:       status,
	}
}

func TestRemainingCapacity_Conservacion(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	reservas := []*entity.Schedule{
		reserva(day, 2, 1, entity.ScheduleStatusPending),
		reserva(day, 3, 0, entity.ScheduleStatusReady),
	}

	// M - Σ(adultos+niños) = 10 - 6 = 4
	assert.Equal(t, 4, agenda.RemainingCapacity(10, reservas, day))
}

func TestRemainingCapacity_FinishedSigueContando(t *testing.T) {
	// Una reserva ya atendida consume el aforo de su día: la capacidad es una
	// restricción por día calendario, no de reservas abiertas.
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	reservas := []*entity.Schedule{
		reserva(day, 4, 0, entity.ScheduleStatusFinished),
	}

	assert.Equal(t, 6, agenda.RemainingCapacity(10, reservas, day))
}

func TestRemainingCapacity_CanceladaNoCuenta(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	reservas := []*entity.Schedule{
		reserva(day, 4, 0, entity.ScheduleStatusCanceled),
	}

	assert.Equal(t, 10, agenda.RemainingCapacity(10, reservas, day))
}

func TestRemainingCapacity_OtroDiaNoCuenta(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	reservas := []*entity.Schedule{
		reserva(day.AddDate(0, 0, 1), 8, 0, entity.ScheduleStatusPending),
	}

	assert.Equal(t, 10, agenda.RemainingCapacity(10, reservas, day))
}

func TestRemainingCapacity_PuedeSerNegativo(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	reservas := []*entity.Schedule{
		reserva(day, 8, 4, entity.ScheduleStatusReady),
	}

	// Día sobrevendido: el restante es negativo y CanAccommodate lo trata como sin cupo.
	assert.Equal(t, -2, agenda.RemainingCapacity(10, reservas, day))
	assert.False(t, agenda.CanAccommodate(10, reservas, day, 1))
}

func TestCanAccommodate_NoSobreventa(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	reservas := []*entity.Schedule{
		reserva(day, 6, 2, entity.ScheduleStatusPending), // 8 ocupados de 10
	}

	assert.False(t, agenda.CanAccommodate(10, reservas, day, 3), "3 más excede el aforo")
	assert.True(t, agenda.CanAccommodate(10, reservas, day, 2), "2 más completa exactamente el aforo")
}

func TestCanAccommodate_GrupoVacioNoReserva(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	assert.False(t, agenda.CanAccommodate(10, nil, day, 0))
	assert.False(t, agenda.CanAccommodate(10, nil, day, -1))
}
