package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPayload importe monetario en la API.
type MoneyPayload struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	TaxIncluded bool            `json:"tax_included"`
}

// PriceRulePayload regla de precio calificada por contexto. Los campos
// opcionales ausentes significan "aplica a todo".
type PriceRulePayload struct {
	Kind       string       `json:"kind" validate:"required"`
	Value      MoneyPayload `json:"value"`
	ListRef    string       `json:"list_ref,omitempty"`
	ActiveFrom *time.Time   `json:"active_from,omitempty"`
	ActiveTo   *time.Time   `json:"active_to,omitempty"`
	MinQty     *int         `json:"min_qty,omitempty"`
	Channels   []string     `json:"channels,omitempty"`
	OutletID   string       `json:"outlet_id,omitempty"`
	Note       string       `json:"note,omitempty"`
}

// VariantPayload presentación del ítem con sus reglas de precio.
type VariantPayload struct {
	Code        string             `json:"code" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Order       int                `json:"order"`
	IsDefault   bool               `json:"is_default"`
	SKU         string             `json:"sku,omitempty"`
	Barcode     string             `json:"barcode,omitempty"`
	SizeLabel   string             `json:"size_label,omitempty"`
	VolumeMl    *int               `json:"volume_ml,omitempty"`
	NetWeightGr *int               `json:"net_weight_gr,omitempty"`
	Prices      []PriceRulePayload `json:"prices,omitempty"`
}

// ModifierOptionPayload opción de un grupo de modificadores.
type ModifierOptionPayload struct {
	Code      string             `json:"code" validate:"required"`
	Name      string             `json:"name" validate:"required"`
	Order     int                `json:"order"`
	IsDefault bool               `json:"is_default"`
	Prices    []PriceRulePayload `json:"prices,omitempty"`
}

// ModifierGroupPayload grupo de modificadores con restricciones de selección.
type ModifierGroupPayload struct {
	Code       string                  `json:"code" validate:"required"`
	Name       string                  `json:"name" validate:"required"`
	Order      int                     `json:"order"`
	MinSelect  *int                    `json:"min_select,omitempty"`
	MaxSelect  *int                    `json:"max_select,omitempty"`
	IsRequired bool                    `json:"is_required"`
	Options    []ModifierOptionPayload `json:"options,omitempty"`
}

// CreateItemRequest entrada para crear un ítem del catálogo con sus variantes
// y grupos de modificadores completos.
type CreateItemRequest struct {
	Category       string                 `json:"category"`
	Name           string                 `json:"name" validate:"required,min=1,max=200"`
	Description    string                 `json:"description"`
	Order          int                    `json:"order"`
	IsActive       *bool                  `json:"is_active"`
	Variants       []VariantPayload       `json:"variants" validate:"required,min=1"`
	ModifierGroups []ModifierGroupPayload `json:"modifier_groups,omitempty"`
}

// UpdateItemRequest entrada para actualizar un ítem. Variants y ModifierGroups
// reemplazan el documento completo cuando vienen presentes.
type UpdateItemRequest struct {
	Category       *string                `json:"category"`
	Name           *string                `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string                `json:"description"`
	Order          *int                   `json:"order"`
	IsActive       *bool                  `json:"is_active"`
	Variants       []VariantPayload       `json:"variants,omitempty"`
	ModifierGroups []ModifierGroupPayload `json:"modifier_groups,omitempty"`
}

// ItemResponse salida de un ítem del catálogo. FromPrice es el precio "desde"
// aproximado para listados (barrido sin contexto); puede venir ausente si el
// ítem no tiene ninguna regla base.
type ItemResponse struct {
	ID             string                 `json:"id"`
	CompanyID      string                 `json:"company_id"`
	Category       string                 `json:"category"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Order          int                    `json:"order"`
	IsActive       bool                   `json:"is_active"`
	Variants       []VariantPayload       `json:"variants"`
	ModifierGroups []ModifierGroupPayload `json:"modifier_groups,omitempty"`
	FromPrice      *MoneyPayload          `json:"from_price,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
