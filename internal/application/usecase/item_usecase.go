package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/textutil"
)

// ItemUseCase casos de uso CRUD y consultas de artículos de inventario.
// Las mutaciones de cantidad NO pasan por acá: solo el registro de movimientos
// puede cambiar quantity, para que el libro nunca quede desalineado del stock.
type ItemUseCase struct {
	repo        repository.InventoryItemRepository
	chamberRepo repository.ChamberRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.InventoryItemRepository, chamberRepo repository.ChamberRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, chamberRepo: chamberRepo}
}

// Create crea un artículo. El GTIN debe ser único dentro de la empresa
// (ErrDuplicate) y la cámara pertenecer al tenant (ErrNotFound).
func (uc *ItemUseCase) Create(companyID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	chamber, err := uc.chamberRepo.GetByID(in.ChamberID)
	if err != nil {
		return nil, err
	}
	if chamber == nil || chamber.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetByGTIN(companyID, in.GTIN)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ChamberID:   in.ChamberID,
		Description: in.Description,
		GTIN:        in.GTIN,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Weight:      in.Weight,
		Cost:        in.Cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo del tenant.
func (uc *ItemUseCase) GetByID(companyID, id string) (*dto.ItemResponse, error) {
	item, err := uc.resolve(companyID, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update actualiza los campos editables. El GTIN es inmutable y quantity solo
// cambia por movimientos.
func (uc *ItemUseCase) Update(companyID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.resolve(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinQuantity = *in.MinQuantity
	}
	if in.Weight != nil {
		item.Weight = *in.Weight
	}
	if in.Cost != nil {
		item.Cost = *in.Cost
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo del tenant.
func (uc *ItemUseCase) Delete(companyID, id string) error {
	if _, err := uc.resolve(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// List lista artículos por empresa con paginación.
func (uc *ItemUseCase) List(companyID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemListResponse(list, limit, offset), nil
}

// Search busca artículos por descripción, insensible a mayúsculas y acentos
// ("camara" encuentra "Cámara").
func (uc *ItemUseCase) Search(companyID, term string, limit, offset int) (*dto.ItemListResponse, error) {
	normalized := textutil.NormalizeSearchTerm(term)
	if normalized == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(companyID, normalized, limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemListResponse(list, limit, offset), nil
}

// LowStock devuelve los artículos en o bajo su umbral de reposición, ordenados
// por déficit descendente (Priority 1 = el más urgente de reponer).
func (uc *ItemUseCase) LowStock(companyID string) ([]dto.LowStockItemDTO, error) {
	list, err := uc.repo.ListBelowMinimum(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(list))
	for _, item := range list {
		deficit := item.MinQuantity - item.Quantity
		if deficit < 0 {
			deficit = 0
		}
		out = append(out, dto.LowStockItemDTO{
			ItemID:      item.ID,
			Description: item.Description,
			GTIN:        item.GTIN,
			ChamberID:   item.ChamberID,
			Quantity:    item.Quantity,
			MinQuantity: item.MinQuantity,
			Deficit:     deficit,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Deficit > out[j].Deficit })
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}

func (uc *ItemUseCase) resolve(companyID, id string) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func toItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		CompanyID:   i.CompanyID,
		ChamberID:   i.ChamberID,
		Description: i.Description,
		GTIN:        i.GTIN,
		Quantity:    i.Quantity,
		MinQuantity: i.MinQuantity,
		Weight:      i.Weight,
		Cost:        i.Cost,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toItemListResponse(list []*entity.InventoryItem, limit, offset int) *dto.ItemListResponse {
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toItemResponse(i))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
