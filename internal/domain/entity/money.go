package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money representa un importe monetario con su divisa e indicador de impuesto incluido.
// Amount siempre debe ser >= 0; la divisa debe pertenecer al conjunto soportado.
type Money struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	TaxIncluded bool            `json:"tax_included"`
}

// Divisas soportadas por la plataforma (ISO-4217). Conjunto cerrado a propósito:
// no hay conversión de divisas, solo validación de entrada.
var supportedCurrencies = map[string]struct{}{
	"COP": {},
	"USD": {},
	"EUR": {},
	"MXN": {},
	"PEN": {},
	"TRY": {},
}

// IsSupportedCurrency indica si el código de divisa pertenece al conjunto soportado.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}

// NewMoney construye un Money validado.
func NewMoney(amount decimal.Decimal, currency string, taxIncluded bool) (Money, error) {
	m := Money{Amount: amount, Currency: currency, TaxIncluded: taxIncluded}
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return m, nil
}

// Validate verifica los invariantes del importe: monto no negativo y divisa soportada.
func (m Money) Validate() error {
	if m.Amount.IsNegative() {
		return fmt.Errorf("money: monto negativo %s", m.Amount)
	}
	if !IsSupportedCurrency(m.Currency) {
		return fmt.Errorf("money: divisa no soportada %q", m.Currency)
	}
	return nil
}

// CompareIgnoringCurrency compara dos importes solo por su monto numérico,
// ignorando la divisa. Devuelve -1, 0 o 1 como decimal.Cmp.
//
// Comparar montos de divisas distintas es una limitación conocida del catálogo
// (las reglas de un mismo ítem casi siempre comparten divisa); se aísla aquí
// para que un futuro cambio sea puntual.
func CompareIgnoringCurrency(a, b Money) int {
	return a.Amount.Cmp(b.Amount)
}
