package usecase

import (
	"time"

	"github.com/jhoicas/carta-api/internal/application/dto"
	"github.com/jhoicas/carta-api/internal/domain"
	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/pricing"
	"github.com/jhoicas/carta-api/internal/domain/repository"
)

// QuoteUseCase expone el motor de precios sobre el catálogo persistido:
// resolución puntual de una variante y cotización de una línea completa.
type QuoteUseCase struct {
	items repository.ItemRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(items repository.ItemRepository) *QuoteUseCase {
	return &QuoteUseCase{items: items}
}

// buildContext arma el contexto de resolución desde los parámetros de la API.
// Canal inválido se rechaza; canal vacío significa "no especificado".
func buildContext(channel, outletID string, at *time.Time, quantity int) (pricing.ResolutionContext, error) {
	ctx := pricing.ResolutionContext{OutletID: outletID, When: at, Quantity: quantity}
	if channel != "" {
		c := entity.Channel(channel)
		if !c.IsValid() {
			return pricing.ResolutionContext{}, domain.ErrInvalidInput
		}
		ctx.Channel = c
	}
	return ctx, nil
}

// ResolvePrice resuelve el precio de una variante del ítem para un contexto.
// Available=false cuando ninguna regla aplica; no es un error.
func (uc *QuoteUseCase) ResolvePrice(itemID string, q dto.PriceQuery) (*dto.ResolvedPriceResponse, error) {
	item, err := uc.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	variant := item.VariantByCode(q.Variant)
	if variant == nil {
		return nil, domain.ErrNotFound
	}

	kind := entity.PriceKind(q.Kind)
	if q.Kind == "" {
		kind = entity.PriceKindBase
	}
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	ctx, err := buildContext(q.Channel, q.OutletID, q.At, q.Quantity)
	if err != nil {
		return nil, err
	}

	resolved := pricing.Resolve(variant.Prices, kind, ctx)
	if resolved == nil {
		return &dto.ResolvedPriceResponse{Available: false}, nil
	}
	money := toMoneyPayload(resolved.Money)
	rule := toPriceRulePayload(resolved.Rule)
	return &dto.ResolvedPriceResponse{Available: true, Money: &money, Rule: &rule}, nil
}

// QuoteLine cotiza una línea de pedido: variante + opciones seleccionadas ×
// cantidad. Con Available=false la línea no es cotizable y quien llama debe
// impedir su envío.
func (uc *QuoteUseCase) QuoteLine(itemID string, in dto.QuoteLineRequest) (*dto.QuoteLineResponse, error) {
	item, err := uc.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	variant := item.VariantByCode(in.Variant)
	if variant == nil {
		return nil, domain.ErrNotFound
	}

	selected := make([]pricing.SelectedOption, 0, len(in.Options))
	for _, sel := range in.Options {
		group := item.ModifierGroupByCode(sel.Group)
		if group == nil {
			return nil, domain.ErrNotFound
		}
		option := group.OptionByCode(sel.Option)
		if option == nil {
			return nil, domain.ErrNotFound
		}
		selected = append(selected, pricing.SelectedOption{Group: group, Option: option})
	}

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	ctx, err := buildContext(in.Channel, in.OutletID, in.At, quantity)
	if err != nil {
		return nil, err
	}

	line := pricing.PriceLine(variant, selected, quantity, ctx)
	if line == nil {
		return &dto.QuoteLineResponse{Available: false, Quantity: quantity}, nil
	}
	unit := toMoneyPayload(line.UnitPrice)
	total := toMoneyPayload(line.Total)
	return &dto.QuoteLineResponse{
		Available: true,
		UnitPrice: &unit,
		Total:     &total,
		Quantity:  quantity,
	}, nil
}
