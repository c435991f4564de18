package entity

import "time"

// Client representa un cliente del negocio (destinatario de facturas y remisiones).
type Client struct {
	ID         string
	BusinessID string
	Name       string
	TaxID      string // NIT o documento fiscal
	Email      string
	Phone      string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
