package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ChamberUseCase casos de uso CRUD para cámaras de almacenamiento.
type ChamberUseCase struct {
	repo repository.ChamberRepository
}

// NewChamberUseCase construye el caso de uso.
func NewChamberUseCase(repo repository.ChamberRepository) *ChamberUseCase {
	return &ChamberUseCase{repo: repo}
}

// Create crea una nueva cámara.
func (uc *ChamberUseCase) Create(companyID string, in dto.CreateChamberRequest) (*dto.ChamberResponse, error) {
	now := time.Now()
	chamber := &entity.Chamber{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(chamber); err != nil {
		return nil, err
	}
	return toChamberResponse(chamber), nil
}

// GetByID obtiene una cámara del tenant.
func (uc *ChamberUseCase) GetByID(companyID, id string) (*dto.ChamberResponse, error) {
	chamber, err := uc.resolve(companyID, id)
	if err != nil {
		return nil, err
	}
	return toChamberResponse(chamber), nil
}

// Update actualiza una cámara.
func (uc *ChamberUseCase) Update(companyID, id string, in dto.UpdateChamberRequest) (*dto.ChamberResponse, error) {
	chamber, err := uc.resolve(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		chamber.Name = *in.Name
	}
	chamber.UpdatedAt = time.Now()
	if err := uc.repo.Update(chamber); err != nil {
		return nil, err
	}
	return toChamberResponse(chamber), nil
}

// List lista cámaras por empresa con paginación.
func (uc *ChamberUseCase) List(companyID string, limit, offset int) (*dto.ChamberListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChamberResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toChamberResponse(c))
	}
	return &dto.ChamberListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una cámara del tenant.
func (uc *ChamberUseCase) Delete(companyID, id string) error {
	if _, err := uc.resolve(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// resolve busca la cámara y verifica pertenencia al tenant. Una cámara de otra
// empresa responde ErrNotFound, sin filtrar su existencia.
func (uc *ChamberUseCase) resolve(companyID, id string) (*entity.Chamber, error) {
	chamber, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chamber == nil || chamber.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return chamber, nil
}

func toChamberResponse(c *entity.Chamber) *dto.ChamberResponse {
	if c == nil {
		return nil
	}
	return &dto.ChamberResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
