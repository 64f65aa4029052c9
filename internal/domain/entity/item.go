package entity

import (
	"fmt"
	"time"
)

// Item representa un artículo del catálogo (plato, bebida, producto) de una
// empresa. Es el agregado raíz: variantes y grupos de modificadores viven
// embebidos en el ítem y se persisten como documentos JSON.
type Item struct {
	ID             string
	CompanyID      string
	Category       string
	Name           string
	Description    string
	Order          int
	IsActive       bool
	Variants       []Variant
	ModifierGroups []ModifierGroup
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Variant es una presentación concreta del ítem (tamaño, formato). Cada
// variante lleva su propio arreglo de reglas de precio.
type Variant struct {
	Code        string      `json:"code"` // único dentro del ítem
	Name        string      `json:"name"`
	Order       int         `json:"order"`
	IsDefault   bool        `json:"is_default"`
	SKU         string      `json:"sku,omitempty"`
	Barcode     string      `json:"barcode,omitempty"`
	SizeLabel   string      `json:"size_label,omitempty"`
	VolumeMl    *int        `json:"volume_ml,omitempty"`
	NetWeightGr *int        `json:"net_weight_gr,omitempty"`
	Prices      []PriceRule `json:"prices,omitempty"`
}

// ModifierGroup agrupa opciones seleccionables (extras, salsas, tamaños de
// acompañamiento) con restricciones de selección.
type ModifierGroup struct {
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Order      int              `json:"order"`
	MinSelect  *int             `json:"min_select,omitempty"`
	MaxSelect  *int             `json:"max_select,omitempty"`
	IsRequired bool             `json:"is_required"`
	Options    []ModifierOption `json:"options,omitempty"`
}

// ModifierOption es una opción dentro de un grupo, con sus propias reglas de precio.
type ModifierOption struct {
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Order     int         `json:"order"`
	IsDefault bool        `json:"is_default"`
	Prices    []PriceRule `json:"prices,omitempty"`
}

// VariantByCode busca una variante por su código. Devuelve nil si no existe.
func (i *Item) VariantByCode(code string) *Variant {
	for idx := range i.Variants {
		if i.Variants[idx].Code == code {
			return &i.Variants[idx]
		}
	}
	return nil
}

// ModifierGroupByCode busca un grupo de modificadores por su código.
func (i *Item) ModifierGroupByCode(code string) *ModifierGroup {
	for idx := range i.ModifierGroups {
		if i.ModifierGroups[idx].Code == code {
			return &i.ModifierGroups[idx]
		}
	}
	return nil
}

// OptionByCode busca una opción dentro del grupo por su código.
func (g *ModifierGroup) OptionByCode(code string) *ModifierOption {
	for idx := range g.Options {
		if g.Options[idx].Code == code {
			return &g.Options[idx]
		}
	}
	return nil
}

// Validate verifica los invariantes del agregado completo: códigos de variante
// únicos, grupos bien formados y todas las reglas de precio válidas. Es la
// frontera de ingestión: datos que pasan por aquí pueden asumirse bien formados
// por el motor de resolución.
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item: name requerido")
	}
	if len(i.Variants) == 0 {
		return fmt.Errorf("item: al menos una variante requerida")
	}
	seen := make(map[string]struct{}, len(i.Variants))
	for _, v := range i.Variants {
		if v.Code == "" {
			return fmt.Errorf("item: variante sin código")
		}
		if _, dup := seen[v.Code]; dup {
			return fmt.Errorf("item: código de variante duplicado %q", v.Code)
		}
		seen[v.Code] = struct{}{}
		for _, r := range v.Prices {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("variante %q: %w", v.Code, err)
			}
		}
	}
	seenGroups := make(map[string]struct{}, len(i.ModifierGroups))
	for _, g := range i.ModifierGroups {
		if g.Code == "" {
			return fmt.Errorf("item: grupo de modificadores sin código")
		}
		if _, dup := seenGroups[g.Code]; dup {
			return fmt.Errorf("item: código de grupo duplicado %q", g.Code)
		}
		seenGroups[g.Code] = struct{}{}
		if g.MinSelect != nil && g.MaxSelect != nil && *g.MinSelect > *g.MaxSelect {
			return fmt.Errorf("grupo %q: min_select > max_select", g.Code)
		}
		seenOpts := make(map[string]struct{}, len(g.Options))
		for _, o := range g.Options {
			if o.Code == "" {
				return fmt.Errorf("grupo %q: opción sin código", g.Code)
			}
			if _, dup := seenOpts[o.Code]; dup {
				return fmt.Errorf("grupo %q: código de opción duplicado %q", g.Code, o.Code)
			}
			seenOpts[o.Code] = struct{}{}
			for _, r := range o.Prices {
				if err := r.Validate(); err != nil {
					return fmt.Errorf("opción %q/%q: %w", g.Code, o.Code, err)
				}
			}
		}
	}
	return nil
}
