package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tax_id, address, phone, email, max_capacity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.Address, company.Phone,
		company.Email, company.MaxCapacity, company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, max_capacity, status, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email,
		&c.MaxCapacity, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByTaxID obtiene una empresa por identificación tributaria.
func (r *CompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, max_capacity, status, created_at, updated_at
		FROM companies WHERE tax_id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, taxID).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email,
		&c.MaxCapacity, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by tax_id: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, phone = $4, email = $5, max_capacity = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.Phone, company.Email,
		company.MaxCapacity, company.Status, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, max_capacity, status, created_at, updated_at
		FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email,
			&c.MaxCapacity, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetActiveModules devuelve los módulos activos y sin vencer de la empresa.
func (r *CompanyRepo) GetActiveModules(companyID string) ([]*entity.CompanyModule, error) {
	query := `
		SELECT id, company_id, module_name, is_active, activated_at, expires_at, created_at, updated_at
		FROM company_modules
		WHERE company_id = $1 AND is_active = true AND (expires_at IS NULL OR expires_at > now())`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list company modules: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompanyModule
	for rows.Next() {
		var m entity.CompanyModule
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ModuleName, &m.IsActive,
			&m.ActivatedAt, &m.ExpiresAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company module: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ActivateModule activa (o reactiva) un módulo para la empresa. Upsert por
// (company_id, module_name): reactivar actualiza vigencia en lugar de duplicar.
func (r *CompanyRepo) ActivateModule(module *entity.CompanyModule) error {
	query := `
		INSERT INTO company_modules (id, company_id, module_name, is_active, activated_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, module_name) DO UPDATE
		SET is_active = EXCLUDED.is_active, activated_at = EXCLUDED.activated_at,
		    expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		module.ID, module.CompanyID, module.ModuleName, module.IsActive,
		module.ActivatedAt, module.ExpiresAt, module.CreatedAt, module.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("activate module: %w", err)
	}
	return nil
}
