package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/billing-pro/internal/domain/money"
)

func usdLeft(digits int) *money.Format {
	return &money.Format{
		Display:    money.DisplaySymbol,
		Position:   money.PositionLeft,
		Digits:     digits,
		GroupSep:   ",",
		DecimalSep: ".",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de formateo: agrupación, separadores, posición del símbolo y signo.
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatAmount_AgrupacionMillones(t *testing.T) {
	got := money.FormatAmount(decimal.NewFromFloat(1234567.891), "USD", usdLeft(2))
	assert.Equal(t, "$1,234,567.89", got)
}

func TestFormatAmount_NegativoSimboloIzquierda(t *testing.T) {
	got := money.FormatAmount(decimal.NewFromInt(-50), "USD", usdLeft(2))
	assert.Equal(t, "-$50.00", got, "el signo va antes del símbolo, no entre símbolo y dígitos")
}

func TestFormatAmount_NegativoSimboloDerecha(t *testing.T) {
	f := &money.Format{Display: money.DisplaySymbol, Position: money.PositionRight, Digits: 2, GroupSep: ".", DecimalSep: ","}
	got := money.FormatAmount(decimal.NewFromFloat(-1234.5), "EUR", f)
	assert.Equal(t, "-1.234,50€", got)
}

func TestFormatAmount_CodigoSinDecimales(t *testing.T) {
	f := &money.Format{Display: money.DisplayCode, Position: money.PositionRight, Digits: 0, GroupSep: ".", DecimalSep: ","}
	got := money.FormatAmount(decimal.NewFromInt(100), "EUR", f)
	assert.Equal(t, "100EUR", got, "con digits=0 no debe emitirse separador decimal")
}

func TestFormatAmount_CeroRespetaDecimales(t *testing.T) {
	assert.Equal(t, "$0.00", money.FormatAmount(decimal.Zero, "USD", nil))
}

// Redondeo, no truncamiento: 1.005 con dos decimales debe dar 1.01.
// Se construye con decimal para no depender de la representación binaria de float.
func TestFormatAmount_RedondeaNoTrunca(t *testing.T) {
	v, err := decimal.NewFromString("1.005")
	assert.NoError(t, err)
	assert.Equal(t, "$1.01", money.FormatAmount(v, "USD", usdLeft(2)))

	// half-away-from-zero también en negativos
	assert.Equal(t, "-$1.01", money.FormatAmount(v.Neg(), "USD", usdLeft(2)))
}

func TestFormatAmount_MasDecimalesQueDigits(t *testing.T) {
	v, _ := decimal.NewFromString("2.71828")
	assert.Equal(t, "$2.72", money.FormatAmount(v, "USD", usdLeft(2)))
}

func TestFormatAmount_GruposParciales(t *testing.T) {
	cases := map[string]string{
		"1":          "$1.00",
		"12":         "$12.00",
		"123":        "$123.00",
		"1234":       "$1,234.00",
		"12345":      "$12,345.00",
		"123456":     "$123,456.00",
		"1234567":    "$1,234,567.00",
		"1000000000": "$1,000,000,000.00",
	}
	for in, want := range cases {
		v, _ := decimal.NewFromString(in)
		assert.Equal(t, want, money.FormatAmount(v, "USD", usdLeft(2)), "entrada %s", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Degradación: formato ausente y moneda desconocida nunca fallan.
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatAmount_SinFormato_UsaDefaultsDeLaMoneda(t *testing.T) {
	// COP: 0 decimales, miles con punto
	got := money.FormatAmount(decimal.NewFromInt(1500000), "COP", nil)
	assert.Equal(t, "$1.500.000", got)
}

func TestFormatAmount_MonedaDesconocida_FallbackGlobal(t *testing.T) {
	got := money.FormatAmount(decimal.NewFromFloat(1234.5), "XXX", nil)
	assert.Equal(t, "XXX1,234.50", got,
		"código desconocido: el propio código hace de símbolo con el formato global")
}

func TestFormatAmount_DigitsNegativo_SeNormalizaACero(t *testing.T) {
	f := usdLeft(-3)
	assert.Equal(t, "$10", money.FormatAmount(decimal.NewFromFloat(9.7), "USD", f))
}

// Idempotencia: proyección pura, misma entrada misma salida, sin estado oculto.
func TestFormatAmount_Idempotente(t *testing.T) {
	f := usdLeft(2)
	v := decimal.NewFromFloat(99.999)
	first := money.FormatAmount(v, "USD", f)
	second := money.FormatAmount(v, "USD", f)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, f.Digits, "no debe mutar el formato recibido")
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "$19.99", money.FormatFloat(19.99, "USD", usdLeft(2)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de metadatos
// ──────────────────────────────────────────────────────────────────────────────

func TestLookup(t *testing.T) {
	usd, ok := money.Lookup("USD")
	assert.True(t, ok)
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, 2, usd.Digits)

	_, ok = money.Lookup("ZZZ")
	assert.False(t, ok)
}

func TestDefaultFormat(t *testing.T) {
	eur := money.DefaultFormat("EUR")
	assert.Equal(t, ".", eur.GroupSep)
	assert.Equal(t, ",", eur.DecimalSep)
	assert.Equal(t, money.DisplaySymbol, eur.Display)

	unknown := money.DefaultFormat("ZZZ")
	assert.Equal(t, 2, unknown.Digits)
	assert.Equal(t, ",", unknown.GroupSep)
	assert.Equal(t, ".", unknown.DecimalSep)
}
