package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/carta-api/internal/application/dto"
	"github.com/jhoicas/carta-api/internal/domain"
	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/repository"
)

// OutletUseCase casos de uso CRUD para sedes.
type OutletUseCase struct {
	repo repository.OutletRepository
}

// NewOutletUseCase construye el caso de uso.
func NewOutletUseCase(repo repository.OutletRepository) *OutletUseCase {
	return &OutletUseCase{repo: repo}
}

// parseChannels traduce y valida los canales del payload.
func parseChannels(names []string) ([]entity.Channel, error) {
	if len(names) == 0 {
		return nil, nil
	}
	channels := make([]entity.Channel, 0, len(names))
	for _, n := range names {
		c := entity.Channel(n)
		if !c.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		channels = append(channels, c)
	}
	return channels, nil
}

// Create crea una sede para la empresa.
func (uc *OutletUseCase) Create(companyID string, in dto.CreateOutletRequest) (*dto.OutletResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	channels, err := parseChannels(in.Channels)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	outlet := &entity.Outlet{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Channels:  channels,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(outlet); err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// GetByID obtiene una sede por ID.
func (uc *OutletUseCase) GetByID(id string) (*dto.OutletResponse, error) {
	outlet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// List lista las sedes de la empresa con paginación.
func (uc *OutletUseCase) List(companyID string, limit, offset int) (*dto.OutletListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutletResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOutletResponse(o))
	}
	return &dto.OutletListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos presentes de la sede.
func (uc *OutletUseCase) Update(id string, in dto.UpdateOutletRequest) (*dto.OutletResponse, error) {
	outlet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, nil
	}
	if in.Name != nil {
		outlet.Name = *in.Name
	}
	if in.Address != nil {
		outlet.Address = *in.Address
	}
	if in.Phone != nil {
		outlet.Phone = *in.Phone
	}
	if in.Channels != nil {
		channels, err := parseChannels(in.Channels)
		if err != nil {
			return nil, err
		}
		outlet.Channels = channels
	}
	if in.IsActive != nil {
		outlet.IsActive = *in.IsActive
	}
	outlet.UpdatedAt = time.Now()
	if err := uc.repo.Update(outlet); err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// Delete elimina una sede por ID.
func (uc *OutletUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
