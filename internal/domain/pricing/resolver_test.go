package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Resolve: filtrar por kind + matcher + ranking, con nil como "sin precio".
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_SinReglasDevuelveNil(t *testing.T) {
	assert.Nil(t, pricing.Resolve(nil, entity.PriceKindBase, pricing.ResolutionContext{}))
	assert.Nil(t, pricing.Resolve([]entity.PriceRule{}, entity.PriceKindBase, pricing.ResolutionContext{}))
}

func TestResolve_FiltraPorKind(t *testing.T) {
	deposito := baseRule("2")
	deposito.Kind = entity.PriceKindDeposit
	base := baseRule("10")

	got := pricing.Resolve([]entity.PriceRule{deposito, base}, entity.PriceKindBase, pricing.ResolutionContext{})
	require.NotNil(t, got)
	assert.Equal(t, "10", got.Money.Amount.String())

	got = pricing.Resolve([]entity.PriceRule{deposito, base}, entity.PriceKindDeposit, pricing.ResolutionContext{})
	require.NotNil(t, got)
	assert.Equal(t, "2", got.Money.Amount.String(),
		"el kind es solo una clave de partición; el algoritmo es el mismo")
}

func TestResolve_UnicaReglaQueAplicaEsLaElegida(t *testing.T) {
	unica := baseRule("10")

	got := pricing.Resolve([]entity.PriceRule{unica}, entity.PriceKindBase, pricing.ResolutionContext{})

	require.NotNil(t, got)
	assert.Equal(t, unica, got.Rule)
}

// Especificidad por sede: caso de referencia del catálogo. Una regla general a
// 10 TRY y una de branch1 a 8 TRY.
func TestResolve_EspecificidadPorSede(t *testing.T) {
	general := baseRule("10")
	branch1 := outletRule("8", "branch1")
	rules := []entity.PriceRule{general, branch1}

	enBranch1 := pricing.Resolve(rules, entity.PriceKindBase, pricing.ResolutionContext{OutletID: "branch1"})
	require.NotNil(t, enBranch1)
	assert.Equal(t, "8", enBranch1.Money.Amount.String(),
		"en branch1 gana la regla específica de la sede")

	enBranch2 := pricing.Resolve(rules, entity.PriceKindBase, pricing.ResolutionContext{OutletID: "branch2"})
	require.NotNil(t, enBranch2)
	assert.Equal(t, "10", enBranch2.Money.Amount.String(),
		"en branch2 la regla de branch1 queda descartada y gana la general")
}

// Tramos por cantidad: 10 TRY sin tramo y 7 TRY desde 5 unidades.
func TestResolve_TramosPorCantidad(t *testing.T) {
	general := baseRule("10")
	mayoreo := tierRule("7", 5)
	rules := []entity.PriceRule{general, mayoreo}

	poco := pricing.Resolve(rules, entity.PriceKindBase, pricing.ResolutionContext{Quantity: 3})
	require.NotNil(t, poco)
	assert.Equal(t, "10", poco.Money.Amount.String())

	mucho := pricing.Resolve(rules, entity.PriceKindBase, pricing.ResolutionContext{Quantity: 6})
	require.NotNil(t, mucho)
	assert.Equal(t, "7", mucho.Money.Amount.String(),
		"con cantidad suficiente gana el tramo de mayoreo")
}

// Ventana temporal: una promo de enero consultada el 1 de febrero no existe.
func TestResolve_FueraDeVentanaDevuelveNil(t *testing.T) {
	promo := windowRule("9", "2024-01-01T00:00:00Z", "2024-01-31T00:00:00Z")
	febrero := pricing.ResolutionContext{When: tsPtr("2024-02-01T00:00:00Z")}

	assert.Nil(t, pricing.Resolve([]entity.PriceRule{promo}, entity.PriceKindBase, febrero),
		"si la única regla está fuera de vigencia no hay precio")
}

// ── Propiedades generales ─────────────────────────────────────────────────────

// Resolver dos veces con la misma entrada produce exactamente el mismo
// resultado (transparencia referencial con When fijado).
func TestResolve_Idempotente(t *testing.T) {
	rules := []entity.PriceRule{
		baseRule("10"),
		outletRule("8", "branch1"),
		channelRule("9", entity.ChannelDelivery),
		tierRule("7", 5),
	}
	ctx := pricing.ResolutionContext{
		Channel:  entity.ChannelDelivery,
		OutletID: "branch1",
		When:     tsPtr("2024-06-01T12:00:00Z"),
		Quantity: 6,
	}

	first := pricing.Resolve(rules, entity.PriceKindBase, ctx)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, pricing.Resolve(rules, entity.PriceKindBase, ctx))
	}
}

// La regla devuelta siempre satisface el matcher para el contexto consultado.
func TestResolve_EsSolido(t *testing.T) {
	rules := []entity.PriceRule{
		baseRule("10"),
		outletRule("8", "branch1"),
		channelRule("9", entity.ChannelPickup),
		tierRule("7", 5),
		windowRule("6", "2024-01-01T00:00:00Z", "2024-01-31T00:00:00Z"),
	}
	contexts := []pricing.ResolutionContext{
		{When: tsPtr("2024-06-01T12:00:00Z")},
		{OutletID: "branch1", When: tsPtr("2024-06-01T12:00:00Z")},
		{Channel: entity.ChannelPickup, When: tsPtr("2024-01-15T12:00:00Z"), Quantity: 8},
		{Channel: entity.ChannelDineIn, OutletID: "branch9", When: tsPtr("2024-02-10T12:00:00Z"), Quantity: 2},
	}

	for _, ctx := range contexts {
		got := pricing.Resolve(rules, entity.PriceKindBase, ctx)
		if got == nil {
			continue
		}
		norm := ctx
		if norm.Quantity <= 0 {
			norm.Quantity = 1
		}
		assert.True(t, pricing.Matches(got.Rule, norm),
			"la regla ganadora debe satisfacer el matcher para el contexto consultado")
	}
}

func TestResolve_ReglaMalFormadaNoGanaNiRompe(t *testing.T) {
	corrupta := baseRule("1")
	corrupta.Value.Currency = "???"
	sana := baseRule("10")

	got := pricing.Resolve([]entity.PriceRule{corrupta, sana}, entity.PriceKindBase, pricing.ResolutionContext{})

	require.NotNil(t, got, "una regla corrupta no debe tumbar la resolución completa")
	assert.Equal(t, "10", got.Money.Amount.String())
}

func TestResolve_SinWhenUsaAhora(t *testing.T) {
	// Vigencia que claramente incluye el presente.
	vigente := windowRule("9", "2000-01-01T00:00:00Z", "2999-01-01T00:00:00Z")
	caducada := windowRule("5", "2000-01-01T00:00:00Z", "2000-12-31T00:00:00Z")

	got := pricing.Resolve([]entity.PriceRule{caducada, vigente}, entity.PriceKindBase, pricing.ResolutionContext{})

	require.NotNil(t, got)
	assert.Equal(t, "9", got.Money.Amount.String(),
		"sin When el contexto se evalúa contra el instante actual")
}
