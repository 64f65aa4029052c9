package entity

import "time"

// Outlet representa una sede o sucursal de una empresa. Las reglas de precio
// pueden restringirse a una sede concreta mediante su ID.
type Outlet struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Phone     string
	Channels  []Channel // canales que la sede atiende; vacío = todos
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
