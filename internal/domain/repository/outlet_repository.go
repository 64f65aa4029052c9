package repository

import "github.com/jhoicas/carta-api/internal/domain/entity"

// OutletRepository define el puerto de persistencia para Outlet (DIP).
type OutletRepository interface {
	Create(outlet *entity.Outlet) error
	GetByID(id string) (*entity.Outlet, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Outlet, error)
	Update(outlet *entity.Outlet) error
	Delete(id string) error
}
