package pricing

import "github.com/jhoicas/carta-api/internal/domain/entity"

// FindMinBasePrice recorre todas las reglas de kind base del ítem (variantes y
// opciones de modificador) y devuelve el importe numéricamente menor, o nil si
// no hay ninguna. Ignora por completo el contexto de venta: es la vía rápida
// para el precio "desde" de listados y tarjetas, donde aún no se conoce sede
// ni canal. El precio exacto de checkout sale de Resolve/PriceLine, no de aquí;
// ambas vías coexisten a propósito.
//
// Empates por monto los gana la primera regla encontrada en orden de
// declaración. Reglas con importe inválido se omiten. La divisa de los
// candidatos no se reconcilia: la comparación es solo por monto
// (entity.CompareIgnoringCurrency).
func FindMinBasePrice(item *entity.Item) *entity.Money {
	if item == nil {
		return nil
	}
	var min *entity.Money
	consider := func(rules []entity.PriceRule) {
		for _, r := range rules {
			if r.Kind != entity.PriceKindBase {
				continue
			}
			if r.Value.Validate() != nil {
				continue
			}
			if min == nil || entity.CompareIgnoringCurrency(r.Value, *min) < 0 {
				v := r.Value
				min = &v
			}
		}
	}
	for _, v := range item.Variants {
		consider(v.Prices)
	}
	for _, g := range item.ModifierGroups {
		for _, o := range g.Options {
			consider(o.Prices)
		}
	}
	return min
}
