// Package agenda implementa el motor puro de disponibilidad y aforo:
// aritmética de fechas normalizada a UTC, generación de turnos según la
// configuración de la empresa y verificación de capacidad diaria.
// No tiene efectos secundarios ni dependencias de persistencia.
package agenda

import "time"

// StartOfDay devuelve la medianoche UTC del día de t.
// Todas las comparaciones por día del motor usan límites UTC para evitar
// conteos dobles dependientes de zona horaria.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay devuelve el último instante representable del día UTC de t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// AddMinutes suma n minutos a t.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// SameDay indica si a y b caen en el mismo día calendario UTC.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
