package agenda

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// Window ventana de atención de un día de semana, en minutos desde medianoche.
type Window struct {
	OpenMinute  int
	CloseMinute int
}

// Config es la configuración de agenda ya parseada, lista para generar turnos.
// Un día de semana sin entrada en Hours se considera cerrado.
type Config struct {
	RangeMinutes  int
	BufferMinutes int
	Hours         map[time.Weekday]Window
}

// Validate verifica los invariantes de configuración: range y buffer positivos
// y cada ventana con apertura estrictamente anterior al cierre. Se aplica en el
// borde de escritura de la configuración, nunca silenciosamente en lectura.
func (c Config) Validate() error {
	if c.RangeMinutes <= 0 {
		return fmt.Errorf("range debe ser positivo, recibido %d", c.RangeMinutes)
	}
	if c.BufferMinutes <= 0 {
		return fmt.Errorf("buffer debe ser positivo, recibido %d", c.BufferMinutes)
	}
	for day, w := range c.Hours {
		if w.OpenMinute < 0 || w.CloseMinute > 24*60 || w.OpenMinute >= w.CloseMinute {
			return fmt.Errorf("ventana inválida para %s: abre %d cierra %d", day, w.OpenMinute, w.CloseMinute)
		}
	}
	return nil
}

// ConfigFrom parsea la entidad persistida ("HH:MM") a una Config operable.
func ConfigFrom(a *entity.Agenda) (Config, error) {
	cfg := Config{
		RangeMinutes:  a.RangeMinutes,
		BufferMinutes: a.BufferMinutes,
		Hours:         make(map[time.Weekday]Window, len(a.BusinessHours)),
	}
	for _, day := range []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	} {
		w, ok := a.BusinessHours[entity.WeekdayKey(day)]
		if !ok {
			continue // día cerrado
		}
		open, err := parseClock(w.Open)
		if err != nil {
			return Config{}, fmt.Errorf("hora de apertura de %s: %w", entity.WeekdayKey(day), err)
		}
		close, err := parseClock(w.Close)
		if err != nil {
			return Config{}, fmt.Errorf("hora de cierre de %s: %w", entity.WeekdayKey(day), err)
		}
		cfg.Hours[day] = Window{OpenMinute: open, CloseMinute: close}
	}
	return cfg, nil
}

// parseClock convierte "HH:MM" a minutos desde medianoche.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("formato esperado HH:MM, recibido %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("hora inválida en %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("minutos inválidos en %q", s)
	}
	return h*60 + m, nil
}
