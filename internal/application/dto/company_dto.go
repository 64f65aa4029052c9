package dto

import "time"

// CreateCompanyRequest entrada para registrar una empresa (tenant).
type CreateCompanyRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Slug            string `json:"slug" validate:"required,min=1,max=80"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	DefaultCurrency string `json:"default_currency" validate:"required,len=3"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	DefaultCurrency string    `json:"default_currency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
