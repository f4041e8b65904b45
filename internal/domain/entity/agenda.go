package entity

import "time"

// Claves de día de semana para BusinessHours (coinciden con el JSONB persistido).
const (
	DayMon = "MON"
	DayTue = "TUE"
	DayWed = "WED"
	DayThu = "THU"
	DayFri = "FRI"
	DaySat = "SAT"
	DaySun = "SUN"
)

// DayWindow ventana de atención de un día: horas en formato "HH:MM" (24h).
type DayWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Agenda es la configuración de generación de turnos de una empresa (una por tenant).
// RangeMinutes es la duración de cada turno; BufferMinutes la separación respecto
// a la apertura y respecto a "ahora" para el día en curso. Un día sin entrada en
// BusinessHours se considera cerrado.
type Agenda struct {
	ID            string
	CompanyID     string
	Name          string
	RangeMinutes  int
	BufferMinutes int
	BusinessHours map[string]DayWindow // clave: DayMon..DaySun
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WeekdayKey traduce un time.Weekday a la clave usada en BusinessHours.
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return DayMon
	case time.Tuesday:
		return DayTue
	case time.Wednesday:
		return DayWed
	case time.Thursday:
		return DayThu
	case time.Friday:
		return DayFri
	case time.Saturday:
		return DaySat
	default:
		return DaySun
	}
}
