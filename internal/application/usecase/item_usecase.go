package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/carta-api/internal/application/dto"
	"github.com/jhoicas/carta-api/internal/domain"
	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD del catálogo. Es la frontera de ingestión de
// reglas de precio: todo lo que se persiste pasó por entity.Item.Validate, de
// modo que el motor de resolución puede asumir datos bien formados (y aún así
// el motor omite reglas corruptas en vez de fallar, por si la frontera se
// salta en una carga externa).
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un ítem del catálogo con variantes y modificadores completos.
func (uc *ItemUseCase) Create(companyID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	now := time.Now()
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	item := &entity.Item{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Category:       in.Category,
		Name:           in.Name,
		Description:    in.Description,
		Order:          in.Order,
		IsActive:       isActive,
		Variants:       toVariants(in.Variants),
		ModifierGroups: toModifierGroups(in.ModifierGroups),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista los ítems de la empresa con paginación.
func (uc *ItemUseCase) List(companyID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos presentes. Variants y ModifierGroups reemplazan
// el documento completo; el agregado resultante se revalida antes de persistir.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Order != nil {
		item.Order = *in.Order
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if in.Variants != nil {
		item.Variants = toVariants(in.Variants)
	}
	if in.ModifierGroups != nil {
		item.ModifierGroups = toModifierGroups(in.ModifierGroups)
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem por ID.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
