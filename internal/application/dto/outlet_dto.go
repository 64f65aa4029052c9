package dto

import "time"

// CreateOutletRequest entrada para crear una sede.
type CreateOutletRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=200"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Channels []string `json:"channels"` // delivery, pickup, dinein; vacío = todos
}

// UpdateOutletRequest entrada para actualizar una sede (campos opcionales).
type UpdateOutletRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *string  `json:"address"`
	Phone    *string  `json:"phone"`
	Channels []string `json:"channels"`
	IsActive *bool    `json:"is_active"`
}

// OutletResponse salida de una sede.
type OutletResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Channels  []string  `json:"channels,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OutletListResponse lista paginada de sedes.
type OutletListResponse struct {
	Items []OutletResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
