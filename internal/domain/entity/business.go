package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/domain/money"
)

// Business representa una organización/tenant del sistema. Toda la información
// de facturación (clientes, items, facturas, remisiones) se acota a un negocio.
type Business struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Address  string
	LogoURL  string
	Currency string // código ISO 4217 (USD, EUR, COP, ...)
	// CurrencyFormat es la configuración de visualización de montos del
	// negocio. Se siembra desde la tabla de metadatos al elegir moneda y
	// después el tenant puede sobreescribirla libremente.
	CurrencyFormat money.Format
	DefaultTaxRate decimal.Decimal // porcentaje aplicado por defecto a items nuevos
	Status         string          // active, suspended, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
