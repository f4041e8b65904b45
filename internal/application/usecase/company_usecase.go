package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/agenda"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo       repository.CompanyRepository
	agendaRepo repository.AgendaRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, agendaRepo repository.AgendaRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, agendaRepo: agendaRepo}
}

// Create crea una nueva empresa. Genera ID y estado inicial. Devuelve
// domain.ErrDuplicate si la identificación tributaria ya existe.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByTaxID(in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.MaxCapacity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		TaxID:       in.TaxID,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		MaxCapacity: in.MaxCapacity,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los datos de contacto de una empresa.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// UpdateScheduleSettings actualiza el aforo máximo y la configuración de agenda.
// La configuración se compila y valida ANTES de persistir: range y buffer deben
// ser positivos y cada ventana tener open < close; una configuración inválida
// nunca llega a la BD.
func (uc *CompanyUseCase) UpdateScheduleSettings(companyID string, in dto.UpdateScheduleSettingsRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.MaxCapacity < 1 {
		return nil, domain.ErrInvalidInput
	}
	candidate := &entity.Agenda{
		CompanyID:     companyID,
		RangeMinutes:  in.RangeMinutes,
		BufferMinutes: in.BufferMinutes,
		BusinessHours: in.BusinessHours,
	}
	cfg, err := agenda.ConfigFrom(candidate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	now := time.Now()
	current, err := uc.agendaRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		candidate.ID = uuid.New().String()
		candidate.Name = company.Name
		candidate.CreatedAt = now
		candidate.UpdatedAt = now
		if err := uc.agendaRepo.Create(candidate); err != nil {
			return nil, err
		}
	} else {
		current.RangeMinutes = in.RangeMinutes
		current.BufferMinutes = in.BufferMinutes
		current.BusinessHours = in.BusinessHours
		current.UpdatedAt = now
		if err := uc.agendaRepo.Update(current); err != nil {
			return nil, err
		}
	}

	company.MaxCapacity = in.MaxCapacity
	company.UpdatedAt = now
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		TaxID:       c.TaxID,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		MaxCapacity: c.MaxCapacity,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
