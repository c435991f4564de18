package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// ValidInvoiceStatus indica si s es un estado conocido de factura.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice representa la cabecera de una factura. Los totales se calculan en el
// servidor al crearla y son la fuente de verdad; el frontend solo los muestra.
type Invoice struct {
	ID         string
	BusinessID string
	ClientID   string
	Prefix     string
	Number     int64 // consecutivo por negocio, asignado por el servidor
	Date       time.Time
	DueDate    time.Time
	Status     string
	NetTotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvoiceLine representa una línea de factura. Name, UnitPrice y TaxRate son
// una instantánea del item al momento de facturar: cambios posteriores al
// catálogo no alteran facturas emitidas.
type InvoiceLine struct {
	ID        string
	InvoiceID string
	ItemID    string
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
	Subtotal  decimal.Decimal // cantidad × precio, sin impuesto
}
