package dto

import "time"

// PriceQuery parámetros para resolver el precio de una variante u opción
// concreta en un contexto de venta.
type PriceQuery struct {
	Variant  string     `query:"variant" validate:"required"`
	Kind     string     `query:"kind"` // por defecto "base"
	Channel  string     `query:"channel"`
	OutletID string     `query:"outlet"`
	At       *time.Time `query:"at"` // ausente = ahora
	Quantity int        `query:"quantity"`
}

// ResolvedPriceResponse resultado de una resolución puntual. Available=false
// significa "sin precio para este contexto": la UI muestra "—" y bloquea el
// añadir al carrito; no es un error.
type ResolvedPriceResponse struct {
	Available bool              `json:"available"`
	Money     *MoneyPayload     `json:"money,omitempty"`
	Rule      *PriceRulePayload `json:"rule,omitempty"`
}

// SelectedOptionRequest opción elegida para una línea: grupo + opción por código.
type SelectedOptionRequest struct {
	Group  string `json:"group" validate:"required"`
	Option string `json:"option" validate:"required"`
}

// QuoteLineRequest entrada para cotizar una línea de pedido.
type QuoteLineRequest struct {
	Variant  string                  `json:"variant" validate:"required"`
	Options  []SelectedOptionRequest `json:"options,omitempty"`
	Quantity int                     `json:"quantity" validate:"min=1"`
	Channel  string                  `json:"channel"`
	OutletID string                  `json:"outlet_id"`
	At       *time.Time              `json:"at"`
}

// QuoteLineResponse resultado de la cotización. Con Available=false la línea
// no es cotizable (alguna pieza quedó sin precio) y no debe enviarse al pedido.
type QuoteLineResponse struct {
	Available bool          `json:"available"`
	UnitPrice *MoneyPayload `json:"unit_price,omitempty"`
	Total     *MoneyPayload `json:"total,omitempty"`
	Quantity  int           `json:"quantity"`
}

// MenuResponse carta pública de una empresa con precio "desde" por ítem.
type MenuResponse struct {
	Company CompanyResponse `json:"company"`
	Items   []ItemResponse  `json:"items"`
}
