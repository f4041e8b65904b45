package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ModuleService verifica qué módulos SaaS tiene activos una empresa.
// Es el único punto de la aplicación que conoce la lógica de activación de módulos.
type ModuleService struct {
	companyRepo repository.CompanyRepository
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(companyRepo repository.CompanyRepository) *ModuleService {
	return &ModuleService{companyRepo: companyRepo}
}

// HasActiveModule informa si la empresa tiene el módulo activo y sin vencer.
// Devuelve false (sin error) si la empresa no tiene el módulo contratado.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *ModuleService) HasActiveModule(_ context.Context, companyID, moduleName string) (bool, error) {
	if companyID == "" || moduleName == "" {
		return false, fmt.Errorf("module: companyID y moduleName son obligatorios")
	}
	modules, err := s.companyRepo.GetActiveModules(companyID)
	if err != nil {
		return false, err
	}
	now := time.Now()
	for _, m := range modules {
		if m.ModuleName != moduleName || !m.IsActive {
			continue
		}
		if m.ExpiresAt != nil && m.ExpiresAt.Before(now) {
			continue
		}
		return true, nil
	}
	return false, nil
}

// ActivateModule activa un módulo para la empresa. expiresAt nil deja la
// activación sin vencimiento.
func (s *ModuleService) ActivateModule(_ context.Context, companyID, moduleName string, expiresAt *time.Time) error {
	switch moduleName {
	case entity.ModuleScheduling, entity.ModuleInventory, entity.ModuleWallet:
	default:
		return domain.ErrInvalidInput
	}
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	return s.companyRepo.ActivateModule(&entity.CompanyModule{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ModuleName:  moduleName,
		IsActive:    true,
		ActivatedAt: now,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}
