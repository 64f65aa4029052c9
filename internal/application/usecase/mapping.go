package usecase

import (
	"github.com/jhoicas/carta-api/internal/application/dto"
	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/pricing"
)

// Mapeo entre payloads de la API y entidades de catálogo. El payload y la
// entidad comparten forma a propósito (registros planos serializables); aquí
// solo se traducen tipos.

func toMoneyPayload(m entity.Money) dto.MoneyPayload {
	return dto.MoneyPayload{Amount: m.Amount, Currency: m.Currency, TaxIncluded: m.TaxIncluded}
}

func toMoney(p dto.MoneyPayload) entity.Money {
	return entity.Money{Amount: p.Amount, Currency: p.Currency, TaxIncluded: p.TaxIncluded}
}

func toPriceRule(p dto.PriceRulePayload) entity.PriceRule {
	channels := make([]entity.Channel, 0, len(p.Channels))
	for _, c := range p.Channels {
		channels = append(channels, entity.Channel(c))
	}
	if len(channels) == 0 {
		channels = nil
	}
	return entity.PriceRule{
		Kind:       entity.PriceKind(p.Kind),
		Value:      toMoney(p.Value),
		ListRef:    p.ListRef,
		ActiveFrom: p.ActiveFrom,
		ActiveTo:   p.ActiveTo,
		MinQty:     p.MinQty,
		Channels:   channels,
		OutletID:   p.OutletID,
		Note:       p.Note,
	}
}

func toPriceRulePayload(r entity.PriceRule) dto.PriceRulePayload {
	channels := make([]string, 0, len(r.Channels))
	for _, c := range r.Channels {
		channels = append(channels, string(c))
	}
	if len(channels) == 0 {
		channels = nil
	}
	return dto.PriceRulePayload{
		Kind:       string(r.Kind),
		Value:      toMoneyPayload(r.Value),
		ListRef:    r.ListRef,
		ActiveFrom: r.ActiveFrom,
		ActiveTo:   r.ActiveTo,
		MinQty:     r.MinQty,
		Channels:   channels,
		OutletID:   r.OutletID,
		Note:       r.Note,
	}
}

func toPriceRules(payloads []dto.PriceRulePayload) []entity.PriceRule {
	if len(payloads) == 0 {
		return nil
	}
	rules := make([]entity.PriceRule, 0, len(payloads))
	for _, p := range payloads {
		rules = append(rules, toPriceRule(p))
	}
	return rules
}

func toPriceRulePayloads(rules []entity.PriceRule) []dto.PriceRulePayload {
	if len(rules) == 0 {
		return nil
	}
	payloads := make([]dto.PriceRulePayload, 0, len(rules))
	for _, r := range rules {
		payloads = append(payloads, toPriceRulePayload(r))
	}
	return payloads
}

func toVariants(payloads []dto.VariantPayload) []entity.Variant {
	variants := make([]entity.Variant, 0, len(payloads))
	for _, p := range payloads {
		variants = append(variants, entity.Variant{
			Code:        p.Code,
			Name:        p.Name,
			Order:       p.Order,
			IsDefault:   p.IsDefault,
			SKU:         p.SKU,
			Barcode:     p.Barcode,
			SizeLabel:   p.SizeLabel,
			VolumeMl:    p.VolumeMl,
			NetWeightGr: p.NetWeightGr,
			Prices:      toPriceRules(p.Prices),
		})
	}
	return variants
}

func toVariantPayloads(variants []entity.Variant) []dto.VariantPayload {
	payloads := make([]dto.VariantPayload, 0, len(variants))
	for _, v := range variants {
		payloads = append(payloads, dto.VariantPayload{
			Code:        v.Code,
			Name:        v.Name,
			Order:       v.Order,
			IsDefault:   v.IsDefault,
			SKU:         v.SKU,
			Barcode:     v.Barcode,
			SizeLabel:   v.SizeLabel,
			VolumeMl:    v.VolumeMl,
			NetWeightGr: v.NetWeightGr,
			Prices:      toPriceRulePayloads(v.Prices),
		})
	}
	return payloads
}

func toModifierGroups(payloads []dto.ModifierGroupPayload) []entity.ModifierGroup {
	if len(payloads) == 0 {
		return nil
	}
	groups := make([]entity.ModifierGroup, 0, len(payloads))
	for _, p := range payloads {
		options := make([]entity.ModifierOption, 0, len(p.Options))
		for _, o := range p.Options {
			options = append(options, entity.ModifierOption{
				Code:      o.Code,
				Name:      o.Name,
				Order:     o.Order,
				IsDefault: o.IsDefault,
				Prices:    toPriceRules(o.Prices),
			})
		}
		groups = append(groups, entity.ModifierGroup{
			Code:       p.Code,
			Name:       p.Name,
			Order:      p.Order,
			MinSelect:  p.MinSelect,
			MaxSelect:  p.MaxSelect,
			IsRequired: p.IsRequired,
			Options:    options,
		})
	}
	return groups
}

func toModifierGroupPayloads(groups []entity.ModifierGroup) []dto.ModifierGroupPayload {
	if len(groups) == 0 {
		return nil
	}
	payloads := make([]dto.ModifierGroupPayload, 0, len(groups))
	for _, g := range groups {
		options := make([]dto.ModifierOptionPayload, 0, len(g.Options))
		for _, o := range g.Options {
			options = append(options, dto.ModifierOptionPayload{
				Code:      o.Code,
				Name:      o.Name,
				Order:     o.Order,
				IsDefault: o.IsDefault,
				Prices:    toPriceRulePayloads(o.Prices),
			})
		}
		payloads = append(payloads, dto.ModifierGroupPayload{
			Code:       g.Code,
			Name:       g.Name,
			Order:      g.Order,
			MinSelect:  g.MinSelect,
			MaxSelect:  g.MaxSelect,
			IsRequired: g.IsRequired,
			Options:    options,
		})
	}
	return payloads
}

// toItemResponse arma la respuesta del ítem incluyendo el precio "desde"
// calculado con el barrido sin contexto.
func toItemResponse(item *entity.Item) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	resp := &dto.ItemResponse{
		ID:             item.ID,
		CompanyID:      item.CompanyID,
		Category:       item.Category,
		Name:           item.Name,
		Description:    item.Description,
		Order:          item.Order,
		IsActive:       item.IsActive,
		Variants:       toVariantPayloads(item.Variants),
		ModifierGroups: toModifierGroupPayloads(item.ModifierGroups),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
	if min := pricing.FindMinBasePrice(item); min != nil {
		p := toMoneyPayload(*min)
		resp.FromPrice = &p
	}
	return resp
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Address:         c.Address,
		Phone:           c.Phone,
		Email:           c.Email,
		DefaultCurrency: c.DefaultCurrency,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toOutletResponse(o *entity.Outlet) *dto.OutletResponse {
	if o == nil {
		return nil
	}
	channels := make([]string, 0, len(o.Channels))
	for _, c := range o.Channels {
		channels = append(channels, string(c))
	}
	if len(channels) == 0 {
		channels = nil
	}
	return &dto.OutletResponse{
		ID:        o.ID,
		CompanyID: o.CompanyID,
		Name:      o.Name,
		Address:   o.Address,
		Phone:     o.Phone,
		Channels:  channels,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
