package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Valores de Format.Display y Format.Position.
const (
	DisplaySymbol = "symbol"
	DisplayCode   = "code"

	PositionLeft  = "left"
	PositionRight = "right"
)

// Format es la configuración de visualización de montos por negocio.
// Se siembra con DefaultFormat al elegir moneda y el tenant puede
// sobreescribir cualquier campo después.
type Format struct {
	Display    string // symbol | code
	Position   string // left | right
	Digits     int    // decimales a mostrar (>= 0)
	GroupSep   string // separador de miles
	DecimalSep string // separador decimal
}

// globalDefault fallback cuando el código de moneda no está en la tabla.
var globalDefault = Format{
	Display:    DisplaySymbol,
	Position:   PositionLeft,
	Digits:     2,
	GroupSep:   ",",
	DecimalSep: ".",
}

// DefaultFormat devuelve el formato por defecto para un código de moneda,
// tomado de la tabla de metadatos. Código desconocido → fallback global.
func DefaultFormat(code string) Format {
	c, ok := Lookup(code)
	if !ok {
		return globalDefault
	}
	return Format{
		Display:    DisplaySymbol,
		Position:   PositionLeft,
		Digits:     c.Digits,
		GroupSep:   c.GroupSep,
		DecimalSep: c.DecimalSep,
	}
}

// FormatAmount renderiza un monto como string de moneda según f. Función pura:
// nunca falla, un código desconocido degrada al formato global con el propio
// código como símbolo. El redondeo es half-away-from-zero, no truncamiento.
//
// El signo de montos negativos va al inicio del string completo:
// "-$1,234.00" con posición left, "-1.234,00EUR" con posición right.
func FormatAmount(amount decimal.Decimal, code string, f *Format) string {
	var fmtv Format
	if f != nil {
		fmtv = *f
	} else {
		fmtv = DefaultFormat(code)
	}
	if fmtv.Digits < 0 {
		fmtv.Digits = 0
	}

	symbol := code
	if c, ok := Lookup(code); ok {
		symbol = c.Symbol
	}
	token := symbol
	if fmtv.Display == DisplayCode {
		token = code
	}

	neg := amount.IsNegative()
	// StringFixed redondea half-away-from-zero a la cantidad de decimales pedida.
	fixed := amount.Abs().StringFixed(int32(fmtv.Digits))

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	number := groupDigits(intPart, fmtv.GroupSep)
	if fmtv.Digits > 0 {
		number += fmtv.DecimalSep + fracPart
	}

	var out string
	if fmtv.Position == PositionRight {
		out = number + token
	} else {
		out = token + number
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatFloat es la conveniencia para montos float64 (previews, querystrings).
func FormatFloat(amount float64, code string, f *Format) string {
	return FormatAmount(decimal.NewFromFloat(amount), code, f)
}

// groupDigits agrupa los dígitos de la parte entera en bloques de tres desde
// la derecha, unidos por sep.
func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	first := len(digits) % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
