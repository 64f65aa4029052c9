package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/pricing"
)

// ctxAt construye un contexto ya normalizado (instante y cantidad explícitos),
// que es como Matches recibe el contexto desde Resolve.
func ctxAt(when string, qty int) pricing.ResolutionContext {
	return pricing.ResolutionContext{When: tsPtr(when), Quantity: qty}
}

// ── Canal ─────────────────────────────────────────────────────────────────────

func TestMatches_SinCanalesAplicaACualquierContexto(t *testing.T) {
	rule := baseRule("10")
	ctx := ctxAt("2024-06-01T12:00:00Z", 1)

	assert.True(t, pricing.Matches(rule, ctx),
		"una regla sin canales debe aplicar aunque el contexto no traiga canal")

	ctx.Channel = entity.ChannelDelivery
	assert.True(t, pricing.Matches(rule, ctx),
		"una regla sin canales debe aplicar a cualquier canal")
}

func TestMatches_CanalRestringido(t *testing.T) {
	rule := channelRule("10", entity.ChannelDelivery, entity.ChannelPickup)

	ctx := ctxAt("2024-06-01T12:00:00Z", 1)
	assert.False(t, pricing.Matches(rule, ctx),
		"una regla con canales no aplica si el contexto no trae canal")

	ctx.Channel = entity.ChannelDineIn
	assert.False(t, pricing.Matches(rule, ctx),
		"el canal del contexto no pertenece al subconjunto de la regla")

	ctx.Channel = entity.ChannelPickup
	assert.True(t, pricing.Matches(rule, ctx))
}

// ── Sede ──────────────────────────────────────────────────────────────────────

func TestMatches_SedeRestringida(t *testing.T) {
	rule := outletRule("8", "branch1")

	ctx := ctxAt("2024-06-01T12:00:00Z", 1)
	assert.False(t, pricing.Matches(rule, ctx),
		"una regla con sede no aplica sin sede en el contexto")

	ctx.OutletID = "branch2"
	assert.False(t, pricing.Matches(rule, ctx))

	ctx.OutletID = "branch1"
	assert.True(t, pricing.Matches(rule, ctx))
}

// ── Ventana de vigencia ───────────────────────────────────────────────────────

func TestMatches_VentanaInclusivaEnAmbosExtremos(t *testing.T) {
	rule := windowRule("9", "2024-01-01T00:00:00Z", "2024-01-31T00:00:00Z")

	assert.True(t, pricing.Matches(rule, ctxAt("2024-01-01T00:00:00Z", 1)),
		"el límite inferior es inclusivo")
	assert.True(t, pricing.Matches(rule, ctxAt("2024-01-31T00:00:00Z", 1)),
		"el límite superior es inclusivo")
	assert.True(t, pricing.Matches(rule, ctxAt("2024-01-15T09:30:00Z", 1)))
	assert.False(t, pricing.Matches(rule, ctxAt("2023-12-31T23:59:59Z", 1)))
	assert.False(t, pricing.Matches(rule, ctxAt("2024-02-01T00:00:00Z", 1)),
		"fuera de la ventana la regla no aplica")
}

func TestMatches_VentanaAbiertaPorUnExtremo(t *testing.T) {
	soloDesde := windowRule("9", "2024-01-01T00:00:00Z", "")
	assert.True(t, pricing.Matches(soloDesde, ctxAt("2030-01-01T00:00:00Z", 1)),
		"sin ActiveTo la vigencia no caduca")
	assert.False(t, pricing.Matches(soloDesde, ctxAt("2023-01-01T00:00:00Z", 1)))

	soloHasta := windowRule("9", "", "2024-01-31T00:00:00Z")
	assert.True(t, pricing.Matches(soloHasta, ctxAt("2020-01-01T00:00:00Z", 1)),
		"sin ActiveFrom la vigencia no tiene inicio")
	assert.False(t, pricing.Matches(soloHasta, ctxAt("2024-02-01T00:00:00Z", 1)))
}

// ── Tramo de cantidad ─────────────────────────────────────────────────────────

func TestMatches_TramoDeCantidad(t *testing.T) {
	rule := tierRule("7", 5)

	assert.False(t, pricing.Matches(rule, ctxAt("2024-06-01T12:00:00Z", 3)))
	assert.True(t, pricing.Matches(rule, ctxAt("2024-06-01T12:00:00Z", 5)),
		"la cantidad mínima es inclusiva")
	assert.True(t, pricing.Matches(rule, ctxAt("2024-06-01T12:00:00Z", 6)))
}

// ── Reglas mal formadas ───────────────────────────────────────────────────────

// Una regla corrupta nunca aplica: así una sola entrada mala del catálogo no
// rompe el precio de todo el ítem.
func TestMatches_ReglaMalFormadaNuncaAplica(t *testing.T) {
	ctx := ctxAt("2024-06-01T12:00:00Z", 1)

	negativa := baseRule("10")
	negativa.Value.Amount = decimal.RequireFromString("-1")
	assert.False(t, pricing.Matches(negativa, ctx), "importe negativo")

	divisaRara := baseRule("10")
	divisaRara.Value.Currency = "XXX"
	assert.False(t, pricing.Matches(divisaRara, ctx), "divisa fuera del conjunto soportado")

	invertida := windowRule("10", "2024-02-01T00:00:00Z", "2024-01-01T00:00:00Z")
	assert.False(t, pricing.Matches(invertida, ctx), "ventana de vigencia invertida")
}
