package pricing_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carta-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos por los tests del motor de precios.
// ──────────────────────────────────────────────────────────────────────────────

// tryMoney construye un Money en TRY con impuesto incluido (la divisa de los
// casos de referencia del catálogo).
func tryMoney(amount string) entity.Money {
	return entity.Money{
		Amount:      decimal.RequireFromString(amount),
		Currency:    "TRY",
		TaxIncluded: true,
	}
}

// baseRule construye una regla base sin restricciones de contexto.
func baseRule(amount string) entity.PriceRule {
	return entity.PriceRule{Kind: entity.PriceKindBase, Value: tryMoney(amount)}
}

// outletRule construye una regla base restringida a una sede.
func outletRule(amount, outletID string) entity.PriceRule {
	r := baseRule(amount)
	r.OutletID = outletID
	return r
}

// channelRule construye una regla base restringida a canales.
func channelRule(amount string, channels ...entity.Channel) entity.PriceRule {
	r := baseRule(amount)
	r.Channels = channels
	return r
}

// tierRule construye una regla base con tramo de cantidad mínima.
func tierRule(amount string, minQty int) entity.PriceRule {
	r := baseRule(amount)
	r.MinQty = &minQty
	return r
}

// windowRule construye una regla base con ventana de vigencia.
func windowRule(amount, from, to string) entity.PriceRule {
	r := baseRule(amount)
	if from != "" {
		r.ActiveFrom = tsPtr(from)
	}
	if to != "" {
		r.ActiveTo = tsPtr(to)
	}
	return r
}

// tsPtr interpreta una fecha RFC3339 y devuelve su puntero.
func tsPtr(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("fecha de test inválida: " + s)
	}
	return &t
}

func intPtr(n int) *int { return &n }
