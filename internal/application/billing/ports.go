package billing

import (
	"context"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// BillingTxRunner ejecuta la creación de factura (consecutivo + líneas +
// descuento de stock) en una sola transacción.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

// InvoicePDFGenerator puerto de generación de la representación gráfica de la
// factura. Implementación con Maroto en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		business *entity.Business,
		client *entity.Client,
		lines []*entity.InvoiceLine,
	) ([]byte, error)
}
