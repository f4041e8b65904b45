package agenda

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RemainingCapacity devuelve el aforo restante del día UTC de target:
// maxCapacity menos la suma de adultos+niños de las reservas de ese día que
// consumen aforo (PENDING, READY y FINISHED; CANCELED no). Puede ser negativo
// si el día ya está sobrevendido: los callers deben tratarlo como "sin cupo",
// nunca como un límite explotable.
func RemainingCapacity(maxCapacity int, reservations []*entity.Schedule, target time.Time) int {
	used := 0
	for _, r := range reservations {
		if !r.CountsTowardCapacity() {
			continue
		}
		if !SameDay(r.StartDate, target) {
			continue
		}
		used += r.PartySize()
	}
	return maxCapacity - used
}

// CanAccommodate indica si un grupo entrante de partySize personas cabe en el
// aforo restante del día de target.
func CanAccommodate(maxCapacity int, reservations []*entity.Schedule, target time.Time, partySize int) bool {
	if partySize <= 0 {
		return false
	}
	return RemainingCapacity(maxCapacity, reservations, target) >= partySize
}
