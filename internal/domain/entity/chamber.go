package entity

import "time"

// Chamber representa una cámara o ubicación física de almacenamiento (multi-cámara).
type Chamber struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
