package usecase

import (
	"context"

	"github.com/jhoicas/carta-api/internal/application/dto"
	"github.com/jhoicas/carta-api/internal/domain"
	"github.com/jhoicas/carta-api/internal/domain/repository"
)

// menuPageSize ítems máximos de la carta pública y del PDF.
const menuPageSize = 200

// MenuUseCase arma la carta pública de una empresa: ítems activos con su
// precio "desde" (barrido sin contexto) y la exportación a PDF.
type MenuUseCase struct {
	companies repository.CompanyRepository
	items     repository.ItemRepository
	pdf       MenuPDFGenerator
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(companies repository.CompanyRepository, items repository.ItemRepository, pdf MenuPDFGenerator) *MenuUseCase {
	return &MenuUseCase{companies: companies, items: items, pdf: pdf}
}

// GetMenu devuelve la carta pública de la empresa. Solo ítems activos; cada
// uno lleva su precio "desde" si alguna regla base existe.
func (uc *MenuUseCase) GetMenu(companyID string) (*dto.MenuResponse, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.items.ListByCompany(companyID, menuPageSize, 0)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		if !it.IsActive {
			continue
		}
		items = append(items, *toItemResponse(it))
	}
	return &dto.MenuResponse{
		Company: *toCompanyResponse(company),
		Items:   items,
	}, nil
}

// GenerateMenuPDF genera la carta imprimible de la empresa.
func (uc *MenuUseCase) GenerateMenuPDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.items.ListByCompany(companyID, menuPageSize, 0)
	if err != nil {
		return nil, err
	}
	active := list[:0]
	for _, it := range list {
		if it.IsActive {
			active = append(active, it)
		}
	}
	return uc.pdf.GenerateMenuPDF(ctx, company, active)
}
