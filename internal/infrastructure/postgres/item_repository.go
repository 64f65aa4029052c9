package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carta-api/internal/domain"
	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL. El
// agregado se guarda con variantes y grupos de modificadores (reglas de precio
// incluidas) como documentos JSONB en la fila del ítem: el catálogo se lee y
// escribe siempre completo, nunca por partes.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, company_id, category, name, description, sort_order, is_active, variants, modifier_groups, created_at, updated_at`

func marshalCatalog(item *entity.Item) (variants, groups []byte, err error) {
	variants, err = json.Marshal(item.Variants)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal variants: %w", err)
	}
	groups, err = json.Marshal(item.ModifierGroups)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal modifier groups: %w", err)
	}
	return variants, groups, nil
}

func unmarshalCatalog(item *entity.Item, variants, groups []byte) error {
	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &item.Variants); err != nil {
			return fmt.Errorf("unmarshal variants: %w", err)
		}
	}
	if len(groups) > 0 {
		if err := json.Unmarshal(groups, &item.ModifierGroups); err != nil {
			return fmt.Errorf("unmarshal modifier groups: %w", err)
		}
	}
	return nil
}

// Create persiste un ítem nuevo con su documento de catálogo completo.
func (r *ItemRepo) Create(item *entity.Item) error {
	variants, groups, err := marshalCatalog(item)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO items (id, company_id, category, name, description, sort_order, is_active, variants, modifier_groups, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.Category, item.Name, item.Description,
		item.Order, item.IsActive, variants, groups, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID con su catálogo completo.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var it entity.Item
	var variants, groups []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.CompanyID, &it.Category, &it.Name, &it.Description,
		&it.Order, &it.IsActive, &variants, &groups, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if err := unmarshalCatalog(&it, variants, groups); err != nil {
		return nil, err
	}
	return &it, nil
}

// ListByCompany lista los ítems de una empresa con paginación, ordenados por
// sort_order para respetar el orden editorial de la carta.
func (r *ItemRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = $1 ORDER BY sort_order, created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		var variants, groups []byte
		if err := rows.Scan(&it.ID, &it.CompanyID, &it.Category, &it.Name, &it.Description,
			&it.Order, &it.IsActive, &variants, &groups, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if err := unmarshalCatalog(&it, variants, groups); err != nil {
			return nil, err
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update reemplaza el ítem completo, documento de catálogo incluido.
func (r *ItemRepo) Update(item *entity.Item) error {
	variants, groups, err := marshalCatalog(item)
	if err != nil {
		return err
	}
	query := `
		UPDATE items SET category = $2, name = $3, description = $4, sort_order = $5, is_active = $6, variants = $7, modifier_groups = $8, updated_at = $9
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.Category, item.Name, item.Description, item.Order,
		item.IsActive, variants, groups, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
