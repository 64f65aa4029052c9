package pricing

import (
	"time"

	"github.com/jhoicas/carta-api/internal/domain/entity"
)

// Resolve elige la única regla aplicable del arreglo para el kind y el
// contexto dados: filtra por kind, descarta las que no aplican según Matches y
// se queda con la más específica según Rank. Devuelve nil cuando ninguna regla
// sobrevive; para quien llama eso significa "sin precio para este contexto"
// (mostrar "—", deshabilitar añadir al carrito), no un error.
//
// La misma función sirve para los precios de una variante y los de una opción
// de modificador: el algoritmo no depende de la entidad dueña del arreglo.
//
// time.Now se consulta una sola vez y solo si el contexto no trae instante;
// con When fijado la función es referencialmente transparente.
func Resolve(rules []entity.PriceRule, kind entity.PriceKind, ctx ResolutionContext) *ResolvedPrice {
	ctx = ctx.normalized(time.Now())

	var matched []entity.PriceRule
	for _, r := range rules {
		if r.Kind != kind {
			continue
		}
		if Matches(r, ctx) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	best := Rank(matched)[0]
	return &ResolvedPrice{Money: best.Value, Rule: best}
}
