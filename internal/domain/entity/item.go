package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un producto o servicio facturable del negocio.
// Si TrackStock es false, Stock se ignora (servicios).
type Item struct {
	ID          string
	BusinessID  string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal // porcentaje (19 = 19%)
	Unit        string          // unidad de medida mostrada (und, kg, hora, ...)
	TrackStock  bool
	Stock       decimal.Decimal
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
