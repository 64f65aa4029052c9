package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/carta-api/internal/domain"
	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/repository"
)

var _ repository.OutletRepository = (*OutletRepo)(nil)

// OutletRepo implementación del puerto OutletRepository sobre PostgreSQL.
// Los canales de la sede se guardan como text[].
type OutletRepo struct {
	q Querier
}

// NewOutletRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOutletRepository(q Querier) *OutletRepo {
	return &OutletRepo{q: q}
}

func channelsToStrings(channels []entity.Channel) []string {
	if len(channels) == 0 {
		return nil
	}
	out := make([]string, 0, len(channels))
	for _, c := range channels {
		out = append(out, string(c))
	}
	return out
}

func stringsToChannels(names []string) []entity.Channel {
	if len(names) == 0 {
		return nil
	}
	out := make([]entity.Channel, 0, len(names))
	for _, n := range names {
		out = append(out, entity.Channel(n))
	}
	return out
}

// Create persiste una sede nueva.
func (r *OutletRepo) Create(outlet *entity.Outlet) error {
	query := `
		INSERT INTO outlets (id, company_id, name, address, phone, channels, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		outlet.ID, outlet.CompanyID, outlet.Name, outlet.Address, outlet.Phone,
		channelsToStrings(outlet.Channels), outlet.IsActive, outlet.CreatedAt, outlet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert outlet: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID.
func (r *OutletRepo) GetByID(id string) (*entity.Outlet, error) {
	query := `
		SELECT id, company_id, name, address, phone, channels, is_active, created_at, updated_at
		FROM outlets WHERE id = $1`
	var o entity.Outlet
	var channels []string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.Name, &o.Address, &o.Phone, &channels,
		&o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outlet: %w", err)
	}
	o.Channels = stringsToChannels(channels)
	return &o, nil
}

// ListByCompany lista las sedes de una empresa con paginación.
func (r *OutletRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Outlet, error) {
	query := `
		SELECT id, company_id, name, address, phone, channels, is_active, created_at, updated_at
		FROM outlets WHERE company_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list outlets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Outlet
	for rows.Next() {
		var o entity.Outlet
		var channels []string
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Name, &o.Address, &o.Phone, &channels,
			&o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan outlet: %w", err)
		}
		o.Channels = stringsToChannels(channels)
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza una sede existente.
func (r *OutletRepo) Update(outlet *entity.Outlet) error {
	query := `
		UPDATE outlets SET name = $2, address = $3, phone = $4, channels = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		outlet.ID, outlet.Name, outlet.Address, outlet.Phone,
		channelsToStrings(outlet.Channels), outlet.IsActive, outlet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update outlet: %w", err)
	}
	return nil
}

// Delete elimina una sede por ID.
func (r *OutletRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM outlets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete outlet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
