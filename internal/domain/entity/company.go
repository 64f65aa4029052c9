package entity

import "time"

// Company representa una organización/tenant de la plataforma. Cada empresa
// es dueña de sus sedes y de su catálogo de ítems.
type Company struct {
	ID              string
	Name            string
	Slug            string // identificador legible para URLs públicas del menú
	Address         string
	Phone           string
	Email           string
	DefaultCurrency string // divisa por defecto del catálogo (ver supportedCurrencies)
	Status          string // active, suspended, inactive
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
