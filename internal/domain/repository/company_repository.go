package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByTaxID(taxID string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	// GetActiveModules devuelve los módulos activos (no vencidos) de la empresa.
	GetActiveModules(companyID string) ([]*entity.CompanyModule, error)
	ActivateModule(module *entity.CompanyModule) error
}
