package dto

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	TaxID       string `json:"tax_id" validate:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	MaxCapacity int    `json:"max_capacity"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// UpdateScheduleSettingsRequest entrada para la configuración de agenda y aforo.
// Range y Buffer en minutos; un día ausente en BusinessHours queda cerrado.
type UpdateScheduleSettingsRequest struct {
	MaxCapacity   int                         `json:"max_capacity"`
	RangeMinutes  int                         `json:"range_minutes"`
	BufferMinutes int                         `json:"buffer_minutes"`
	BusinessHours map[string]entity.DayWindow `json:"business_hours"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	MaxCapacity int       `json:"max_capacity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
