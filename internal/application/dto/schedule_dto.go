package dto

import "time"

// AvailableDatesRequest parámetros de la consulta de disponibilidad.
type AvailableDatesRequest struct {
	StartDate string `query:"start_date"` // RFC 3339 o YYYY-MM-DD
	ViewType  string `query:"view_type"`  // DAY | MONTH | NEXT_N_DAYS
}

// AvailableDatesResponse horarios de inicio disponibles (ascendente, ISO-8601).
type AvailableDatesResponse struct {
	Dates []time.Time `json:"dates"`
}

// RemainingCapacityResponse aforo restante del día consultado.
type RemainingCapacityResponse struct {
	Date              time.Time `json:"date"`
	RemainingCapacity int       `json:"remaining_capacity"`
}

// CreateScheduleRequest entrada pública para reservar un turno.
type CreateScheduleRequest struct {
	StartDate      time.Time `json:"start_date" validate:"required"`
	AdultsAmount   int       `json:"adults_amount" validate:"min=0"`
	KidsAmount     int       `json:"kids_amount" validate:"min=0"`
	Contact        string    `json:"contact" validate:"required"`
	AdditionalInfo string    `json:"additional_info"`
}

// UpdateScheduleStatusRequest transición de estado de una reserva.
type UpdateScheduleStatusRequest struct {
	Status string `json:"status" validate:"required"` // READY | FINISHED | CANCELED
}

// ScheduleResponse salida de una reserva.
type ScheduleResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	AgendaID       string    `json:"agenda_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	AdultsAmount   int       `json:"adults_amount"`
	KidsAmount     int       `json:"kids_amount"`
	Contact        string    `json:"contact"`
	AdditionalInfo string    `json:"additional_info"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ScheduleListResponse reservas de un día.
type ScheduleListResponse struct {
	Items []ScheduleResponse `json:"items"`
	Total int                `json:"total"`
}
