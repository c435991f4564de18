// Package money implementa el formateo de montos para visualización según la
// configuración por negocio. Solo presentación: la aritmética financiera vive
// en los casos de uso con shopspring/decimal.
package money

// Currency es una entrada de la tabla estática de metadatos de moneda:
// referencia de solo lectura, nunca se muta en runtime.
type Currency struct {
	Code       string
	Name       string
	Symbol     string
	Digits     int
	GroupSep   string
	DecimalSep string
}

// currencies tabla de metadatos indexada por código ISO 4217.
var currencies = map[string]Currency{
	"USD": {Code: "USD", Name: "Dólar estadounidense", Symbol: "$", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"GBP": {Code: "GBP", Name: "Libra esterlina", Symbol: "£", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"COP": {Code: "COP", Name: "Peso colombiano", Symbol: "$", Digits: 0, GroupSep: ".", DecimalSep: ","},
	"MXN": {Code: "MXN", Name: "Peso mexicano", Symbol: "$", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"ARS": {Code: "ARS", Name: "Peso argentino", Symbol: "$", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"CLP": {Code: "CLP", Name: "Peso chileno", Symbol: "$", Digits: 0, GroupSep: ".", DecimalSep: ","},
	"PEN": {Code: "PEN", Name: "Sol peruano", Symbol: "S/", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"BRL": {Code: "BRL", Name: "Real brasileño", Symbol: "R$", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"CAD": {Code: "CAD", Name: "Dólar canadiense", Symbol: "$", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"AUD": {Code: "AUD", Name: "Dólar australiano", Symbol: "$", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"CHF": {Code: "CHF", Name: "Franco suizo", Symbol: "CHF", Digits: 2, GroupSep: "'", DecimalSep: "."},
	"JPY": {Code: "JPY", Name: "Yen japonés", Symbol: "¥", Digits: 0, GroupSep: ",", DecimalSep: "."},
	"CNY": {Code: "CNY", Name: "Yuan chino", Symbol: "¥", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"INR": {Code: "INR", Name: "Rupia india", Symbol: "₹", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"KRW": {Code: "KRW", Name: "Won surcoreano", Symbol: "₩", Digits: 0, GroupSep: ",", DecimalSep: "."},
	"SEK": {Code: "SEK", Name: "Corona sueca", Symbol: "kr", Digits: 2, GroupSep: " ", DecimalSep: ","},
	"NOK": {Code: "NOK", Name: "Corona noruega", Symbol: "kr", Digits: 2, GroupSep: " ", DecimalSep: ","},
	"DKK": {Code: "DKK", Name: "Corona danesa", Symbol: "kr", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"PLN": {Code: "PLN", Name: "Złoty polaco", Symbol: "zł", Digits: 2, GroupSep: " ", DecimalSep: ","},
	"TRY": {Code: "TRY", Name: "Lira turca", Symbol: "₺", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"RUB": {Code: "RUB", Name: "Rublo ruso", Symbol: "₽", Digits: 2, GroupSep: " ", DecimalSep: ","},
	"ZAR": {Code: "ZAR", Name: "Rand sudafricano", Symbol: "R", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"NZD": {Code: "NZD", Name: "Dólar neozelandés", Symbol: "$", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"SGD": {Code: "SGD", Name: "Dólar de Singapur", Symbol: "$", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"HKD": {Code: "HKD", Name: "Dólar de Hong Kong", Symbol: "$", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"AED": {Code: "AED", Name: "Dírham de EAU", Symbol: "د.إ", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"SAR": {Code: "SAR", Name: "Riyal saudí", Symbol: "﷼", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"ILS": {Code: "ILS", Name: "Nuevo séquel", Symbol: "₪", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"UYU": {Code: "UYU", Name: "Peso uruguayo", Symbol: "$U", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"VES": {Code: "VES", Name: "Bolívar venezolano", Symbol: "Bs.", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"BOB": {Code: "BOB", Name: "Boliviano", Symbol: "Bs.", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"PYG": {Code: "PYG", Name: "Guaraní paraguayo", Symbol: "₲", Digits: 0, GroupSep: ".", DecimalSep: ","},
	"GTQ": {Code: "GTQ", Name: "Quetzal guatemalteco", Symbol: "Q", Digits: 2, GroupSep: ",", DecimalSep: "."},
	"CRC": {Code: "CRC", Name: "Colón costarricense", Symbol: "₡", Digits: 2, GroupSep: ".", DecimalSep: ","},
	"DOP": {Code: "DOP", Name: "Peso dominicano", Symbol: "RD$", Digits: 2, GroupSep: ",", DecimalSep: "."},
}

// Lookup busca la moneda por código. ok=false si el código no está en la tabla.
func Lookup(code string) (Currency, bool) {
	c, ok := currencies[code]
	return c, ok
}

// All devuelve una copia de todas las monedas conocidas (para GET /api/currencies).
func All() []Currency {
	out := make([]Currency, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, c)
	}
	return out
}
