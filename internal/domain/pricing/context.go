// Package pricing implementa el motor de resolución de precios del catálogo:
// dado el arreglo de reglas de una variante u opción y un contexto concreto de
// venta (canal, sede, instante, cantidad), decide qué regla aplica y calcula
// totales de línea. Todas las funciones son puras y seguras para invocación
// concurrente: operan solo sobre sus argumentos, sin estado compartido.
package pricing

import (
	"time"

	"github.com/jhoicas/carta-api/internal/domain/entity"
)

// ResolutionContext describe la situación concreta de venta contra la que se
// evalúan las reglas. Los campos en cero significan "no especificado":
// canal/sede vacíos no satisfacen reglas restringidas, When nil equivale a
// "ahora" y Quantity <= 0 equivale a 1.
type ResolutionContext struct {
	Channel  entity.Channel
	OutletID string
	When     *time.Time
	Quantity int
}

// WithQuantity devuelve una copia del contexto con la cantidad indicada.
func (c ResolutionContext) WithQuantity(qty int) ResolutionContext {
	c.Quantity = qty
	return c
}

// normalized fija los valores por defecto del contexto tomando "ahora" como
// now. Se aplica una sola vez por llamada a Resolve para que todas las reglas
// de una misma resolución se evalúen contra el mismo instante.
func (c ResolutionContext) normalized(now time.Time) ResolutionContext {
	if c.When == nil {
		c.When = &now
	}
	if c.Quantity <= 0 {
		c.Quantity = 1
	}
	return c
}

// ResolvedPrice es el resultado de una resolución: el importe ganador junto
// con la regla que lo produjo. La ausencia de regla aplicable se señala con
// nil, no con error.
type ResolvedPrice struct {
	Money entity.Money
	Rule  entity.PriceRule
}
