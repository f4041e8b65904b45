package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/schedule"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ScheduleHandler maneja la agenda: la parte pública (disponibilidad, aforo y
// alta de reservas de clientes finales, con el tenant en el path) y la parte
// protegida del personal (vista del día, transiciones de estado, reporte PDF).
type ScheduleHandler struct {
	uc *schedule.UseCase
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(uc *schedule.UseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// AvailableDates godoc
// @Summary      Horarios de inicio disponibles (público)
// @Tags         schedules
// @Produce      json
// @Param        companyID   path   string  true   "ID de la empresa"
// @Param        start_date  query  string  false  "Fecha de referencia (RFC3339 o YYYY-MM-DD; vacía = hoy)"
// @Param        view_type   query  string  false  "DAY | MONTH | NEXT_N_DAYS"  default(DAY)
// @Success      200  {object}  dto.AvailableDatesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/companies/{companyID}/available-dates [get]
func (h *ScheduleHandler) AvailableDates(c *fiber.Ctx) error {
	companyID := c.Params("companyID")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "companyID es requerido"})
	}
	req := dto.AvailableDatesRequest{
		StartDate: c.Query("start_date"),
		ViewType:  c.Query("view_type"),
	}
	dates, err := h.uc.AvailableDates(c.Context(), companyID, req, time.Now().UTC())
	if err != nil {
		return scheduleError(c, err)
	}
	if dates == nil {
		dates = []time.Time{}
	}
	return c.JSON(dto.AvailableDatesResponse{Dates: dates})
}

// RemainingCapacity godoc
// @Summary      Aforo restante de un día (público)
// @Tags         schedules
// @Produce      json
// @Param        companyID  path   string  true   "ID de la empresa"
// @Param        date       query  string  false  "Día a consultar (YYYY-MM-DD; vacío = hoy)"
// @Success      200  {object}  dto.RemainingCapacityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/companies/{companyID}/capacity [get]
func (h *ScheduleHandler) RemainingCapacity(c *fiber.Ctx) error {
	companyID := c.Params("companyID")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "companyID es requerido"})
	}
	day, err := dayParam(c, "date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	remaining, err := h.uc.RemainingCapacity(c.Context(), companyID, day)
	if err != nil {
		return scheduleError(c, err)
	}
	return c.JSON(dto.RemainingCapacityResponse{Date: day, RemainingCapacity: remaining})
}

// Create godoc
// @Summary      Reservar un turno (público)
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        body       body  dto.CreateScheduleRequest  true  "start_date, adults_amount, kids_amount, contact"
// @Success      201  {object}  dto.ScheduleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/companies/{companyID}/schedules [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	companyID := c.Params("companyID")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "companyID es requerido"})
	}
	var in dto.CreateScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sched, err := h.uc.Create(c.Context(), companyID, in, time.Now().UTC())
	if err != nil {
		return scheduleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toScheduleResponse(sched))
}

// ListByDay godoc
// @Summary      Reservas del día (personal)
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Día a consultar (YYYY-MM-DD; vacío = hoy)"
// @Success      200   {object}  dto.ScheduleListResponse
// @Router       /api/schedules [get]
func (h *ScheduleHandler) ListByDay(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	day, err := dayParam(c, "date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	list, err := h.uc.ListByDay(c.Context(), companyID, day)
	if err != nil {
		return scheduleError(c, err)
	}
	items := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toScheduleResponse(s))
	}
	return c.JSON(dto.ScheduleListResponse{Items: items, Total: len(items)})
}

// UpdateStatus godoc
// @Summary      Transición de estado de una reserva (personal)
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reserva"
// @Param        body  body  dto.UpdateScheduleStatusRequest  true  "status: READY | FINISHED | CANCELED"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/schedules/{id}/status [put]
func (h *ScheduleHandler) UpdateStatus(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateScheduleStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sched, err := h.uc.UpdateStatus(c.Context(), companyID, id, in.Status, time.Now().UTC())
	if err != nil {
		return scheduleError(c, err)
	}
	return c.JSON(toScheduleResponse(sched))
}

// DayReportPDF godoc
// @Summary      Reporte PDF de la agenda del día (personal)
// @Tags         schedules
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  query  string  false  "Día del reporte (YYYY-MM-DD; vacío = hoy)"
// @Success      200   {file}  byte
// @Router       /api/schedules/report [get]
func (h *ScheduleHandler) DayReportPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	day, err := dayParam(c, "date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	pdf, err := h.uc.DayReportPDF(c.Context(), companyID, day)
	if err != nil {
		return scheduleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="agenda-`+day.Format("2006-01-02")+`.pdf"`)
	return c.Send(pdf)
}

func scheduleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSlotUnavailable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SLOT_UNAVAILABLE", Message: "el horario no está disponible"})
	case errors.Is(err, domain.ErrCapacityExceeded):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CAPACITY_EXCEEDED", Message: "no hay aforo suficiente para ese día"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// dayParam lee un query param de fecha (YYYY-MM-DD); vacío devuelve el día de hoy UTC.
func dayParam(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", raw)
}

func toScheduleResponse(s *entity.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		AgendaID:       s.AgendaID,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		AdultsAmount:   s.AdultsAmount,
		KidsAmount:     s.KidsAmount,
		Contact:        s.Contact,
		AdditionalInfo: s.AdditionalInfo,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
	}
}
