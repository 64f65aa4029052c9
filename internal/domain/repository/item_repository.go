package repository

import "github.com/jhoicas/carta-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para el agregado Item
// (variantes y grupos de modificadores viajan embebidos en el ítem).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
}
