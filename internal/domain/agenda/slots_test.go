package agenda_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/agenda"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector exacto del motor de turnos.
//
// Configuración: range 60, buffer 15, lunes de 09:00 a 12:00.
// Para un lunes los turnos deben ser exactamente 09:15 y 10:15:
//
//	09:15 + 60 = 10:15 ≤ 12:00  → incluido
//	10:15 + 60 = 11:15 ≤ 12:00  → incluido
//	11:15 + 60 = 12:15 > 12:00  → excluido
// ──────────────────────────────────────────────────────────────────────────────

// monday es un lunes cualquiera, lejos de "ahora" para no activar el filtro del día en curso.
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

// farPast garantiza que ningún test active el recorte por "now + buffer".
var farPast = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func mondayConfig(t *testing.T) agenda.Config {
	t.Helper()
	cfg, err := agenda.ConfigFrom(&entity.Agenda{
		RangeMinutes:  60,
		BufferMinutes: 15,
		BusinessHours: map[string]entity.DayWindow{
			entity.DayMon: {Open: "09:00", Close: "12:00"},
		},
	})
	require.NoError(t, err)
	return cfg
}

func TestAvailableSlots_VectorExacto(t *testing.T) {
	cfg := mondayConfig(t)

	slots := agenda.AvailableSlots(cfg, monday, agenda.ViewDay, 0, farPast)

	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC), slots[1])
}

func TestAvailableSlots_Determinista(t *testing.T) {
	cfg := mondayConfig(t)

	primera := agenda.AvailableSlots(cfg, monday, agenda.ViewDay, 0, farPast)
	segunda := agenda.AvailableSlots(cfg, monday, agenda.ViewDay, 0, farPast)

	assert.Equal(t, primera, segunda, "misma configuración y referencia deben producir la misma secuencia")
}

func TestAvailableSlots_CotasDeVentana(t *testing.T) {
	cfg := mondayConfig(t)
	window := cfg.Hours[time.Monday]

	for _, s := range agenda.AvailableSlots(cfg, monday, agenda.ViewDay, 0, farPast) {
		inicio := s.Hour()*60 + s.Minute()
		assert.GreaterOrEqual(t, inicio, window.OpenMinute+cfg.BufferMinutes,
			"todo turno inicia en apertura+buffer o después")
		assert.LessOrEqual(t, inicio+cfg.RangeMinutes, window.CloseMinute,
			"ningún turno termina después del cierre")
	}
}

func TestAvailableSlots_DiaCerradoSinTurnos(t *testing.T) {
	cfg := mondayConfig(t)
	tuesday := monday.AddDate(0, 0, 1) // martes: sin entrada en BusinessHours

	assert.Empty(t, agenda.AvailableSlots(cfg, tuesday, agenda.ViewDay, 0, farPast))
}

func TestAvailableSlots_MesCompletoSoloDiasAbiertos(t *testing.T) {
	cfg := mondayConfig(t)

	// Marzo 2024 tiene 4 lunes (4, 11, 18, 25); cada lunes aporta 2 turnos.
	slots := agenda.AvailableSlots(cfg, monday, agenda.ViewMonth, 0, farPast)

	require.Len(t, slots, 8)
	for _, s := range slots {
		assert.Equal(t, time.Monday, s.Weekday())
		assert.Equal(t, time.March, s.Month())
	}
	// Orden ascendente a través de los días examinados
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].After(slots[i-1]))
	}
}

func TestAvailableSlots_ProximosNDiasIncluyeReferencia(t *testing.T) {
	cfg := mondayConfig(t)

	// Desde el lunes, 8 días inclusive cubren dos lunes → 4 turnos.
	slots := agenda.AvailableSlots(cfg, monday, agenda.ViewNextDays, 8, farPast)

	require.Len(t, slots, 4)
	assert.True(t, agenda.SameDay(slots[0], monday))
	assert.True(t, agenda.SameDay(slots[2], monday.AddDate(0, 0, 7)))
}

func TestAvailableSlots_HoyDescartaTurnosPasados(t *testing.T) {
	cfg := mondayConfig(t)

	// "Ahora" es el mismo lunes a las 09:30; con buffer 15 el primer inicio
	// admisible es 09:45, por lo que 09:15 queda descartado y 10:15 sobrevive.
	now := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	slots := agenda.AvailableSlots(cfg, monday, agenda.ViewDay, 0, now)

	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC), slots[0])
}

func TestContainsSlot(t *testing.T) {
	cfg := mondayConfig(t)

	ok := agenda.ContainsSlot(cfg, time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC), farPast)
	assert.True(t, ok)

	// 09:30 no pertenece a la grilla generada
	ko := agenda.ContainsSlot(cfg, time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC), farPast)
	assert.False(t, ko)
}

func TestConfigValidate_RechazaRangeYBufferNoPositivos(t *testing.T) {
	base := mondayConfig(t)

	conRange := base
	conRange.RangeMinutes = 0
	assert.Error(t, conRange.Validate())

	conBuffer := base
	conBuffer.BufferMinutes = -5
	assert.Error(t, conBuffer.Validate())

	assert.NoError(t, base.Validate())
}

func TestConfigFrom_RechazaHorasMalFormadas(t *testing.T) {
	_, err := agenda.ConfigFrom(&entity.Agenda{
		RangeMinutes:  60,
		BufferMinutes: 15,
		BusinessHours: map[string]entity.DayWindow{
			entity.DayMon: {Open: "9am", Close: "12:00"},
		},
	})
	assert.Error(t, err)
}
