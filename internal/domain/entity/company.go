package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
// MaxCapacity es el aforo máximo por día calendario (adultos + niños) para la agenda.
type Company struct {
	ID          string
	Name        string
	TaxID       string // identificación tributaria (con o sin dígito de verificación)
	Address     string
	Phone       string
	Email       string
	MaxCapacity int    // capacidad máxima combinada por día calendario
	Status      string // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Módulos SaaS disponibles (deben coincidir con el CHECK de la tabla company_modules).
const (
	ModuleScheduling = "scheduling"
	ModuleInventory  = "inventory"
	ModuleWallet     = "wallet"
)

// CompanyModule representa la activación de un módulo SaaS en una empresa.
type CompanyModule struct {
	ID          string
	CompanyID   string
	ModuleName  string // ver constantes Module*
	IsActive    bool
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil = sin vencimiento
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
