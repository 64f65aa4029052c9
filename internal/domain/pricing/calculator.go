package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carta-api/internal/domain/entity"
)

// SelectedOption es una opción de modificador elegida para una línea, junto
// con el grupo al que pertenece.
type SelectedOption struct {
	Group  *entity.ModifierGroup
	Option *entity.ModifierOption
}

// LinePrice es el resultado del cálculo de una línea: precio unitario
// (variante + opciones) y total (unitario × cantidad).
type LinePrice struct {
	UnitPrice entity.Money
	Total     entity.Money
}

// PriceLine calcula el precio de una línea de pedido: resuelve el precio base
// de la variante, le suma el precio base resuelto de cada opción seleccionada
// y multiplica por la cantidad. La divisa y el indicador de impuesto del
// unitario son los de la variante; se asume divisa uniforme entre variante y
// opciones.
//
// Devuelve nil si la variante o cualquier opción seleccionada queda sin precio
// para el contexto: la línea completa no es cotizable y quien llama debe
// impedir su envío. La cantidad de la línea alimenta también el contexto de
// resolución, de modo que los tramos por cantidad reaccionan al pedido.
func PriceLine(variant *entity.Variant, selected []SelectedOption, quantity int, ctx ResolutionContext) *LinePrice {
	if variant == nil {
		return nil
	}
	if quantity <= 0 {
		quantity = 1
	}
	ctx = ctx.WithQuantity(quantity)

	variantPrice := Resolve(variant.Prices, entity.PriceKindBase, ctx)
	if variantPrice == nil {
		return nil
	}

	optionsTotal := decimal.Zero
	for _, sel := range selected {
		if sel.Option == nil {
			return nil
		}
		optionPrice := Resolve(sel.Option.Prices, entity.PriceKindBase, ctx)
		if optionPrice == nil {
			return nil
		}
		optionsTotal = optionsTotal.Add(optionPrice.Money.Amount)
	}

	unit := entity.Money{
		Amount:      variantPrice.Money.Amount.Add(optionsTotal),
		Currency:    variantPrice.Money.Currency,
		TaxIncluded: variantPrice.Money.TaxIncluded,
	}
	total := entity.Money{
		Amount:      unit.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency:    unit.Currency,
		TaxIncluded: unit.TaxIncluded,
	}
	return &LinePrice{UnitPrice: unit, Total: total}
}
