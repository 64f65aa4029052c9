package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// FindMinBasePrice: precio "desde" sin contexto para listados.
// ──────────────────────────────────────────────────────────────────────────────

func TestFindMinBasePrice_MenorEntreVariantes(t *testing.T) {
	item := &entity.Item{
		Name: "Pizza",
		Variants: []entity.Variant{
			{Code: "REG", Prices: []entity.PriceRule{baseRule("10")}},
			{Code: "LARGE", Prices: []entity.PriceRule{baseRule("14")}},
		},
	}

	got := pricing.FindMinBasePrice(item)

	require.NotNil(t, got)
	assert.Equal(t, "10", got.Amount.String())
	assert.Equal(t, "TRY", got.Currency)
}

func TestFindMinBasePrice_IncluyeOpcionesDeModificador(t *testing.T) {
	item := &entity.Item{
		Name: "Pizza",
		Variants: []entity.Variant{
			{Code: "REG", Prices: []entity.PriceRule{baseRule("10")}},
		},
		ModifierGroups: []entity.ModifierGroup{
			{Code: "extras", Options: []entity.ModifierOption{
				{Code: "queso", Prices: []entity.PriceRule{baseRule("1.5")}},
			}},
		},
	}

	got := pricing.FindMinBasePrice(item)

	require.NotNil(t, got)
	assert.Equal(t, "1.5", got.Amount.String(),
		"el barrido cubre también las reglas base de las opciones")
}

func TestFindMinBasePrice_IgnoraElContextoPorCompleto(t *testing.T) {
	// Reglas restringidas por sede, canal y vigencia caducada: el barrido las
	// considera todas por igual; es la vía aproximada para listados.
	caducada := windowRule("3", "2000-01-01T00:00:00Z", "2000-12-31T00:00:00Z")
	item := &entity.Item{
		Name: "Pizza",
		Variants: []entity.Variant{
			{Code: "REG", Prices: []entity.PriceRule{
				baseRule("10"),
				outletRule("8", "branch1"),
				caducada,
			}},
		},
	}

	got := pricing.FindMinBasePrice(item)

	require.NotNil(t, got)
	assert.Equal(t, "3", got.Amount.String(),
		"las restricciones de contexto no filtran el barrido")
}

func TestFindMinBasePrice_SoloKindBase(t *testing.T) {
	deposito := baseRule("0.5")
	deposito.Kind = entity.PriceKindDeposit
	item := &entity.Item{
		Name: "Refresco",
		Variants: []entity.Variant{
			{Code: "BOT", Prices: []entity.PriceRule{deposito, baseRule("4")}},
		},
	}

	got := pricing.FindMinBasePrice(item)

	require.NotNil(t, got)
	assert.Equal(t, "4", got.Amount.String(),
		"depósitos y recargos no cuentan para el precio desde")
}

func TestFindMinBasePrice_SinReglasBaseDevuelveNil(t *testing.T) {
	assert.Nil(t, pricing.FindMinBasePrice(&entity.Item{Name: "Vacío"}))
	assert.Nil(t, pricing.FindMinBasePrice(nil))
}

func TestFindMinBasePrice_EmpateLoGanaLaPrimeraEncontrada(t *testing.T) {
	primera := baseRule("10")
	primera.Note = "primera"
	segunda := baseRule("10")
	segunda.Note = "segunda"
	item := &entity.Item{
		Name: "Pizza",
		Variants: []entity.Variant{
			{Code: "A", Prices: []entity.PriceRule{primera}},
			{Code: "B", Prices: []entity.PriceRule{segunda}},
		},
	}

	got := pricing.FindMinBasePrice(item)

	require.NotNil(t, got)
	// El Money ganador es el de la primera regla vista; con importes iguales el
	// resultado observable es el mismo importe, la propiedad es el determinismo.
	assert.Equal(t, "10", got.Amount.String())
}

func TestFindMinBasePrice_OmiteImportesInvalidos(t *testing.T) {
	corrupta := baseRule("1")
	corrupta.Value.Amount = decimal.RequireFromString("-1")
	item := &entity.Item{
		Name: "Pizza",
		Variants: []entity.Variant{
			{Code: "REG", Prices: []entity.PriceRule{corrupta, baseRule("10")}},
		},
	}

	got := pricing.FindMinBasePrice(item)

	require.NotNil(t, got)
	assert.Equal(t, "10", got.Amount.String(),
		"un importe inválido no puede ganar el precio desde")
}
