package pricing

import "github.com/jhoicas/carta-api/internal/domain/entity"

// Matches decide si una regla de precio aplica al contexto dado. Aplica cuando
// se cumplen todas las condiciones:
//
//   - la regla no restringe canal, o el contexto trae un canal incluido en la regla;
//   - la regla no restringe sede, o el contexto trae exactamente esa sede;
//   - el instante del contexto cae dentro de [ActiveFrom, ActiveTo], ambos
//     extremos inclusivos y un extremo ausente es abierto;
//   - la regla no exige cantidad mínima, o la cantidad del contexto la alcanza.
//
// Una regla mal formada (importe negativo, divisa desconocida, ventana
// invertida) nunca aplica: la validación es responsabilidad de la frontera de
// ingestión y una entrada corrupta no debe tumbar el precio de todo el ítem.
//
// El contexto debe venir normalizado (When y Quantity con valores efectivos);
// Resolve se encarga de eso.
func Matches(rule entity.PriceRule, ctx ResolutionContext) bool {
	if rule.Validate() != nil {
		return false
	}
	if rule.HasChannels() {
		if ctx.Channel == "" || !rule.AppliesToChannel(ctx.Channel) {
			return false
		}
	}
	if rule.HasOutlet() && ctx.OutletID != rule.OutletID {
		return false
	}
	if ctx.When != nil {
		if rule.ActiveFrom != nil && ctx.When.Before(*rule.ActiveFrom) {
			return false
		}
		if rule.ActiveTo != nil && ctx.When.After(*rule.ActiveTo) {
			return false
		}
	}
	if rule.MinQty != nil && ctx.Quantity < *rule.MinQty {
		return false
	}
	return true
}
