package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/pricing"
)

// ── Escala de especificidad ───────────────────────────────────────────────────

func TestRank_SedeAntesQueCanalAntesQueComodin(t *testing.T) {
	comodin := baseRule("10")
	porCanal := channelRule("10", entity.ChannelDelivery)
	porSede := outletRule("10", "branch1")

	ranked := pricing.Rank([]entity.PriceRule{comodin, porCanal, porSede})

	require.Len(t, ranked, 3)
	assert.Equal(t, "branch1", ranked[0].OutletID, "la regla por sede es la más específica")
	assert.True(t, ranked[1].HasChannels(), "la regla por canal va en segundo lugar")
	assert.False(t, ranked[2].HasOutlet())
	assert.False(t, ranked[2].HasChannels())
}

func TestRank_MayorTramoDeCantidadPrimero(t *testing.T) {
	sinTramo := baseRule("10")
	tramo2 := tierRule("9", 2)
	tramo5 := tierRule("7", 5)

	ranked := pricing.Rank([]entity.PriceRule{sinTramo, tramo2, tramo5})

	require.Len(t, ranked, 3)
	assert.Equal(t, 5, *ranked[0].MinQty, "el tramo más exigente que calificó va primero")
	assert.Equal(t, 2, *ranked[1].MinQty)
	assert.Nil(t, ranked[2].MinQty, "sin tramo queda por debajo de cualquier tramo explícito")
}

func TestRank_TramoCeroSuperaATramoAusente(t *testing.T) {
	sinTramo := baseRule("5")
	tramoCero := tierRule("9", 0)

	ranked := pricing.Rank([]entity.PriceRule{sinTramo, tramoCero})

	require.Len(t, ranked, 2)
	assert.NotNil(t, ranked[0].MinQty, "MinQty=0 explícito es más específico que ausente")
}

// ── Desempates finales ────────────────────────────────────────────────────────

func TestRank_EmpateSeResuelvePorMenorImporte(t *testing.T) {
	cara := baseRule("12")
	barata := baseRule("9.5")

	ranked := pricing.Rank([]entity.PriceRule{cara, barata})

	assert.Equal(t, "9.5", ranked[0].Value.Amount.String(),
		"a igual especificidad gana el importe menor")
}

func TestRank_EmpateTotalConservaOrdenDeDeclaracion(t *testing.T) {
	primera := baseRule("10")
	primera.Note = "primera"
	segunda := baseRule("10")
	segunda.Note = "segunda"

	ranked := pricing.Rank([]entity.PriceRule{primera, segunda})

	assert.Equal(t, "primera", ranked[0].Note,
		"con empate total gana la regla declarada antes (orden estable)")
}

// La ordenación no debe depender de nada no determinista: la misma entrada
// produce siempre la misma salida.
func TestRank_Determinista(t *testing.T) {
	rules := []entity.PriceRule{
		baseRule("10"),
		outletRule("8", "branch1"),
		channelRule("9", entity.ChannelPickup),
		tierRule("7", 5),
		baseRule("10"),
	}

	first := pricing.Rank(rules)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, pricing.Rank(rules))
	}
}

func TestRank_NoMutaLaEntrada(t *testing.T) {
	rules := []entity.PriceRule{baseRule("12"), outletRule("8", "branch1")}

	_ = pricing.Rank(rules)

	assert.Equal(t, "12", rules[0].Value.Amount.String(),
		"Rank debe trabajar sobre una copia del arreglo")
}

// ── Comparador ────────────────────────────────────────────────────────────────

func TestCompare_EsAntisimetrico(t *testing.T) {
	a := outletRule("8", "branch1")
	b := channelRule("9", entity.ChannelDelivery)

	assert.Negative(t, pricing.Compare(a, b))
	assert.Positive(t, pricing.Compare(b, a))
	assert.Zero(t, pricing.Compare(a, a))
}
