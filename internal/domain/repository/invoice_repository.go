package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create persiste cabecera y líneas (debe llamarse dentro de una tx).
	Create(inv *entity.Invoice, lines []*entity.InvoiceLine) error
	GetByID(id string) (*entity.Invoice, error)
	GetLines(invoiceID string) ([]*entity.InvoiceLine, error)
	// ListByBusiness lista facturas; status vacío = todas.
	ListByBusiness(businessID, status string, limit, offset int) ([]*entity.Invoice, error)
	ListByIDs(businessID string, ids []string) ([]*entity.Invoice, error)
	Search(businessID, q string, limit int) ([]*entity.Invoice, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
	// NextNumber asigna el siguiente consecutivo del negocio. Debe llamarse
	// dentro de la misma tx que Create para no dejar huecos ni duplicados.
	NextNumber(businessID string) (int64, error)
}
