package entity

import "time"

// Estados de una remisión (nota de entrega).
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusDelivered = "delivered"
)

// DeliveryNote representa una remisión: un envío de mercancía que agrupa una o
// más facturas hacia un cliente. Es el documento que gestiona el rol deliver.
type DeliveryNote struct {
	ID         string
	BusinessID string
	ClientID   string
	Number     int64 // consecutivo por negocio
	Date       time.Time
	Status     string // pending, delivered
	Address    string // dirección de entrega (puede diferir de la del cliente)
	Notes      string
	InvoiceIDs []string // facturas agrupadas en el envío
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
