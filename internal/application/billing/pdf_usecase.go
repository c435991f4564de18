package billing

import (
	"context"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// PDFUseCase arma los datos de una factura y delega la generación del PDF.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	bizRepo     repository.BusinessRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	bizRepo repository.BusinessRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		bizRepo:     bizRepo,
		generator:   generator,
	}
}

// GenerateInvoicePDF genera el PDF de la factura para descarga/impresión.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, businessID, invoiceID string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	biz, err := uc.bizRepo.GetByID(businessID)
	if err != nil || biz == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.invoiceRepo.GetLines(invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv, biz, client, lines)
}
