package dto

import "time"

// CreateChamberRequest entrada para crear una cámara.
type CreateChamberRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateChamberRequest entrada para actualizar una cámara.
type UpdateChamberRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// ChamberResponse salida de una cámara.
type ChamberResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChamberListResponse lista paginada de cámaras.
type ChamberListResponse struct {
	Items []ChamberResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
