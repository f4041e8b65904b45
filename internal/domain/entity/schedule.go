package entity

import "time"

// Estados de una reserva. El flujo normal es PENDING → READY → FINISHED y nunca
// retrocede; CANCELED solo lo aplica el personal sobre PENDING o READY.
const (
	ScheduleStatusPending  = "PENDING"
	ScheduleStatusReady    = "READY"
	ScheduleStatusFinished = "FINISHED"
	ScheduleStatusCanceled = "CANCELED"
)

// Schedule representa una reserva de agenda de un cliente final.
// Invariante: EndDate = StartDate + Agenda.RangeMinutes.
type Schedule struct {
	ID             string
	CompanyID      string
	AgendaID       string
	StartDate      time.Time
	EndDate        time.Time
	AdultsAmount   int
	KidsAmount     int
	Contact        string
	AdditionalInfo string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PartySize devuelve el tamaño total del grupo (adultos + niños).
func (s *Schedule) PartySize() int {
	return s.AdultsAmount + s.KidsAmount
}

// CountsTowardCapacity indica si la reserva consume aforo de su día calendario.
// FINISHED sigue contando (el aforo es una restricción por día, no de reservas
// abiertas); solo CANCELED libera el cupo.
func (s *Schedule) CountsTowardCapacity() bool {
	return s.Status != ScheduleStatusCanceled
}

// CanTransitionTo valida la transición de estado solicitada.
func (s *Schedule) CanTransitionTo(next string) bool {
	switch s.Status {
	case ScheduleStatusPending:
		return next == ScheduleStatusReady || next == ScheduleStatusCanceled
	case ScheduleStatusReady:
		return next == ScheduleStatusFinished || next == ScheduleStatusCanceled
	default:
		return false
	}
}
