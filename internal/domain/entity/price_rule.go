package entity

import (
	"fmt"
	"time"
)

// Channel representa el modo de venta al que puede restringirse una regla de precio.
type Channel string

const (
	ChannelDelivery Channel = "delivery"
	ChannelPickup   Channel = "pickup"
	ChannelDineIn   Channel = "dinein"
)

// IsValid indica si el canal es uno de los soportados.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelDelivery, ChannelPickup, ChannelDineIn:
		return true
	}
	return false
}

// PriceKind particiona las reglas de precio por propósito. El motor de resolución
// trata todos los kinds de forma idéntica: el kind es solo una clave de partición.
type PriceKind string

const (
	PriceKindBase      PriceKind = "base"
	PriceKindSurcharge PriceKind = "surcharge"
	PriceKindDeposit   PriceKind = "deposit"
)

// IsValid indica si el kind está definido en el catálogo.
func (k PriceKind) IsValid() bool {
	switch k {
	case PriceKindBase, PriceKindSurcharge, PriceKindDeposit:
		return true
	}
	return false
}

// PriceRule es un hecho de precio adjunto a una variante o a una opción de
// modificador, calificado por contexto: canal, sede, ventana de vigencia y
// tramo de cantidad. Los campos opcionales ausentes significan "aplica a todo".
type PriceRule struct {
	Kind       PriceKind  `json:"kind"`
	Value      Money      `json:"value"`
	ListRef    string     `json:"list_ref,omitempty"`    // referencia opaca a una lista de precios externa; no se resuelve aquí
	ActiveFrom *time.Time `json:"active_from,omitempty"` // nil = sin límite inferior
	ActiveTo   *time.Time `json:"active_to,omitempty"`   // nil = sin límite superior
	MinQty     *int       `json:"min_qty,omitempty"`     // tramo de cantidad; nil = sin mínimo
	Channels   []Channel  `json:"channels,omitempty"`    // nil/vacío = todos los canales
	OutletID   string     `json:"outlet_id,omitempty"`   // "" = todas las sedes
	Note       string     `json:"note,omitempty"`        // solo presentación; no participa en la resolución
}

// HasOutlet indica si la regla está restringida a una sede concreta.
func (r PriceRule) HasOutlet() bool { return r.OutletID != "" }

// HasChannels indica si la regla está restringida a un subconjunto de canales.
func (r PriceRule) HasChannels() bool { return len(r.Channels) > 0 }

// AppliesToChannel indica si el canal pertenece al subconjunto de la regla.
// Una regla sin canales aplica a todos.
func (r PriceRule) AppliesToChannel(c Channel) bool {
	if !r.HasChannels() {
		return true
	}
	for _, rc := range r.Channels {
		if rc == c {
			return true
		}
	}
	return false
}

// Validate verifica los invariantes de la regla. Se usa en dos puntos:
// el caso de uso de catálogo rechaza reglas inválidas al ingresar datos,
// y el motor de resolución trata una regla inválida como que nunca aplica
// (una entrada corrupta no debe romper el precio de todo el ítem).
func (r PriceRule) Validate() error {
	if !r.Kind.IsValid() {
		return fmt.Errorf("price rule: kind inválido %q", r.Kind)
	}
	if err := r.Value.Validate(); err != nil {
		return fmt.Errorf("price rule: %w", err)
	}
	if r.ActiveFrom != nil && r.ActiveTo != nil && r.ActiveFrom.After(*r.ActiveTo) {
		return fmt.Errorf("price rule: ventana invertida (%s > %s)", r.ActiveFrom, r.ActiveTo)
	}
	if r.MinQty != nil && *r.MinQty < 0 {
		return fmt.Errorf("price rule: min_qty negativo %d", *r.MinQty)
	}
	for _, c := range r.Channels {
		if !c.IsValid() {
			return fmt.Errorf("price rule: canal inválido %q", c)
		}
	}
	return nil
}
