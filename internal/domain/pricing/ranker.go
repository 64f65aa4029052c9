package pricing

import (
	"sort"

	"github.com/jhoicas/carta-api/internal/domain/entity"
)

// Compare es el orden total de especificidad entre dos reglas ya filtradas por
// el matcher. Devuelve negativo si a debe ir antes que b (a es más específica).
// Criterios, cada uno solo desempata al anterior:
//
//  1. Regla con sede concreta antes que regla sin sede.
//  2. Regla con canales restringidos antes que regla sin restricción de canal.
//  3. Mayor MinQty primero: el tramo de cantidad más exigente que aún calificó
//     es el más ajustado al pedido. MinQty ausente queda por debajo de
//     cualquier tramo presente.
//  4. Menor importe primero (la plataforma favorece mostrar el precio más
//     favorable), comparando solo montos; ver entity.CompareIgnoringCurrency.
//
// Un desempate final por orden de declaración lo aporta la ordenación estable
// de Rank, no este comparador.
func Compare(a, b entity.PriceRule) int {
	if c := compareBool(a.HasOutlet(), b.HasOutlet()); c != 0 {
		return c
	}
	if c := compareBool(a.HasChannels(), b.HasChannels()); c != 0 {
		return c
	}
	if c := minQtyValue(b) - minQtyValue(a); c != 0 {
		return c
	}
	return entity.CompareIgnoringCurrency(a.Value, b.Value)
}

// Rank ordena las reglas candidatas de más a menos específica sin mutar el
// arreglo de entrada. La ordenación es estable: entre reglas indistinguibles
// gana la que aparece primero en el catálogo, de modo que el resultado es
// totalmente determinista para una misma entrada.
func Rank(candidates []entity.PriceRule) []entity.PriceRule {
	ranked := make([]entity.PriceRule, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i], ranked[j]) < 0
	})
	return ranked
}

// compareBool ordena true antes que false.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

// minQtyValue devuelve el tramo de cantidad de la regla; ausente cuenta como
// -1 para quedar por debajo de cualquier tramo explícito (incluido 0).
func minQtyValue(r entity.PriceRule) int {
	if r.MinQty == nil {
		return -1
	}
	return *r.MinQty
}
