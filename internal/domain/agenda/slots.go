package agenda

import "time"

// ViewType define el rango de días a examinar al calcular disponibilidad.
type ViewType string

const (
	ViewDay      ViewType = "DAY"         // solo el día de referencia
	ViewMonth    ViewType = "MONTH"       // todos los días del mes de referencia
	ViewNextDays ViewType = "NEXT_N_DAYS" // los próximos N días desde la referencia, inclusive
)

// ParseViewType valida el string recibido por la API; default DAY.
func ParseViewType(s string) (ViewType, bool) {
	switch ViewType(s) {
	case ViewDay, ViewMonth, ViewNextDays:
		return ViewType(s), true
	case "":
		return ViewDay, true
	default:
		return "", false
	}
}

// AvailableSlots genera los horarios de inicio candidatos para la vista pedida,
// en orden ascendente. Para cada día abierto los turnos arrancan en
// apertura+buffer, separados por range, y se descarta todo turno cuyo fin
// supere el cierre. Si el día examinado es el día de now, también se descartan
// los inicios anteriores a now+buffer. nDays solo aplica a ViewNextDays.
//
// El cálculo es determinista: misma configuración y misma referencia producen
// la misma secuencia. No filtra por aforo; eso es responsabilidad del guard de
// capacidad, aplicado por el caller como segunda pasada.
func AvailableSlots(cfg Config, ref time.Time, view ViewType, nDays int, now time.Time) []time.Time {
	var days []time.Time
	refDay := StartOfDay(ref)

	switch view {
	case ViewMonth:
		first := time.Date(refDay.Year(), refDay.Month(), 1, 0, 0, 0, 0, time.UTC)
		for d := first; d.Month() == refDay.Month(); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
	case ViewNextDays:
		if nDays < 1 {
			nDays = 1
		}
		for i := 0; i < nDays; i++ {
			days = append(days, refDay.AddDate(0, 0, i))
		}
	default: // ViewDay
		days = append(days, refDay)
	}

	slots := make([]time.Time, 0, len(days)*8)
	for _, day := range days {
		slots = append(slots, daySlots(cfg, day, now)...)
	}
	return slots
}

// daySlots genera los turnos de un día calendario UTC.
func daySlots(cfg Config, day time.Time, now time.Time) []time.Time {
	window, open := cfg.Hours[day.Weekday()]
	if !open {
		return nil // sin horario de atención: día cerrado
	}

	var slots []time.Time
	start := AddMinutes(day, window.OpenMinute+cfg.BufferMinutes)
	closeAt := AddMinutes(day, window.CloseMinute)

	// En el día en curso no se ofrecen turnos que ya pasaron o están muy encima
	minStart := time.Time{}
	if SameDay(day, now) {
		minStart = AddMinutes(now.UTC(), cfg.BufferMinutes)
	}

	for ; !AddMinutes(start, cfg.RangeMinutes).After(closeAt); start = AddMinutes(start, cfg.RangeMinutes) {
		if !minStart.IsZero() && start.Before(minStart) {
			continue
		}
		slots = append(slots, start)
	}
	return slots
}

// ContainsSlot indica si candidate es exactamente uno de los turnos generados
// para su día. Se usa en el escritor de reservas para re-validar contra el
// estado persistido y nunca confiar en valores derivados del cliente.
func ContainsSlot(cfg Config, candidate time.Time, now time.Time) bool {
	for _, s := range daySlots(cfg, StartOfDay(candidate), now) {
		if s.Equal(candidate.UTC()) {
			return true
		}
	}
	return false
}
