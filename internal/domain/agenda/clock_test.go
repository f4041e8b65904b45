package agenda_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/agenda"
)

func TestStartOfDay_NormalizaAUTC(t *testing.T) {
	// 23:30 del 4 de marzo en UTC-5 = 04:30 del 5 de marzo UTC
	bogota := time.FixedZone("America/Bogota", -5*3600)
	local := time.Date(2024, 3, 4, 23, 30, 0, 0, bogota)

	got := agenda.StartOfDay(local)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got,
		"el día calendario se decide en UTC, no en la zona del cliente")
}

func TestEndOfDay_UltimoInstanteDelDia(t *testing.T) {
	d := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	end := agenda.EndOfDay(d)

	assert.True(t, end.After(time.Date(2024, 3, 4, 23, 59, 59, 0, time.UTC)))
	assert.True(t, end.Before(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestAddMinutes(t *testing.T) {
	d := time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 4, 10, 15, 0, 0, time.UTC), agenda.AddMinutes(d, 60))
	assert.Equal(t, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), agenda.AddMinutes(d, -15))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 4, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 3, 4, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.True(t, agenda.SameDay(a, b))
	assert.False(t, agenda.SameDay(b, c))
}
