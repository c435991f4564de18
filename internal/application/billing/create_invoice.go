package billing

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/money"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var cien = decimal.NewFromInt(100)

// CreateInvoiceUseCase crea una factura: asigna consecutivo, congela precios
// del catálogo en las líneas, calcula totales y descuenta stock, todo en una
// transacción. Los totales son fuente de verdad del servidor: lo que envíe el
// frontend se ignora.
type CreateInvoiceUseCase struct {
	txRunner   BillingTxRunner
	clientRepo repository.ClientRepository
	bizRepo    repository.BusinessRepository
	itemRepo   repository.ItemRepository
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	clientRepo repository.ClientRepository,
	bizRepo repository.BusinessRepository,
	itemRepo repository.ItemRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:   txRunner,
		clientRepo: clientRepo,
		bizRepo:    bizRepo,
		itemRepo:   itemRepo,
	}
}

// CreateInvoice valida, calcula y persiste la factura con sus líneas.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, businessID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Cliente: debe existir y ser del negocio activo.
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}

	biz, err := uc.bizRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if biz == nil {
		return nil, domain.ErrNotFound
	}

	// Validación de items y construcción de líneas (solo lectura, fuera de la tx).
	itemsByID := make(map[string]*entity.Item, len(in.Items))
	for _, line := range in.Items {
		if line.ItemID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.BusinessID != businessID {
			return nil, domain.ErrNotFound
		}
		if item.Status != "active" {
			return nil, domain.ErrConflict
		}
		itemsByID[line.ItemID] = item
	}

	now := time.Now()
	date := now
	if in.Date != "" {
		if d, err := time.Parse("2006-01-02", in.Date); err == nil {
			date = d
		}
	}
	var dueDate time.Time
	if in.DueDate != "" {
		if d, err := time.Parse("2006-01-02", in.DueDate); err == nil {
			dueDate = d
		}
	}

	invoiceID := uuid.New().String()
	netTotal := decimal.Zero
	taxTotal := decimal.Zero
	lines := make([]*entity.InvoiceLine, 0, len(in.Items))
	for _, reqLine := range in.Items {
		item := itemsByID[reqLine.ItemID]
		unitPrice := item.UnitPrice
		if reqLine.UnitPrice != nil {
			if reqLine.UnitPrice.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
			unitPrice = *reqLine.UnitPrice
		}
		taxRate := item.TaxRate
		if reqLine.TaxRate != nil {
			taxRate = *reqLine.TaxRate
		}
		subtotal := reqLine.Quantity.Mul(unitPrice)
		netTotal = netTotal.Add(subtotal)
		taxTotal = taxTotal.Add(subtotal.Mul(taxRate).Div(cien))
		lines = append(lines, &entity.InvoiceLine{
			ID:        uuid.New().String(),
			InvoiceID: invoiceID,
			ItemID:    item.ID,
			Name:      item.Name, // instantánea: el catálogo puede cambiar después
			Quantity:  reqLine.Quantity,
			UnitPrice: unitPrice,
			TaxRate:   taxRate,
			Subtotal:  subtotal,
		})
	}

	inv := &entity.Invoice{
		ID:         invoiceID,
		BusinessID: businessID,
		ClientID:   client.ID,
		Prefix:     in.Prefix,
		Date:       date,
		DueDate:    dueDate,
		Status:     entity.InvoiceStatusDraft,
		NetTotal:   netTotal,
		TaxTotal:   taxTotal,
		GrandTotal: netTotal.Add(taxTotal),
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		itemRepo repository.ItemRepository,
	) error {
		// Consecutivo dentro de la tx: sin huecos ni duplicados bajo concurrencia.
		number, err := invoiceRepo.NextNumber(businessID)
		if err != nil {
			return err
		}
		inv.Number = number
		// Descuento de stock por línea; sin stock suficiente → rollback completo.
		for _, line := range lines {
			item := itemsByID[line.ItemID]
			if item.TrackStock {
				if err := itemRepo.AdjustStock(item.ID, line.Quantity.Neg()); err != nil {
					return err
				}
			}
		}
		return invoiceRepo.Create(inv, lines)
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, lines, client.Name, biz), nil
}

// toInvoiceResponse mapea la factura a DTO con el gran total formateado según
// la configuración de moneda del negocio.
func toInvoiceResponse(inv *entity.Invoice, lines []*entity.InvoiceLine, clientName string, biz *entity.Business) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:         inv.ID,
		BusinessID: inv.BusinessID,
		ClientID:   inv.ClientID,
		ClientName: clientName,
		Prefix:     inv.Prefix,
		Number:     inv.Number,
		FullNumber: FullNumber(inv),
		Date:       inv.Date.Format("2006-01-02"),
		Status:     inv.Status,
		NetTotal:   inv.NetTotal,
		TaxTotal:   inv.TaxTotal,
		GrandTotal: inv.GrandTotal,
		Notes:      inv.Notes,
	}
	if !inv.DueDate.IsZero() {
		out.DueDate = inv.DueDate.Format("2006-01-02")
	}
	if biz != nil {
		out.GrandTotalDisplay = money.FormatAmount(inv.GrandTotal, biz.Currency, &biz.CurrencyFormat)
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.InvoiceLineResponse{
			ID:        l.ID,
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			TaxRate:   l.TaxRate,
			Subtotal:  l.Subtotal,
		})
	}
	return out
}

// FullNumber arma el número visible de la factura (prefijo + consecutivo).
func FullNumber(inv *entity.Invoice) string {
	return inv.Prefix + strconv.FormatInt(inv.Number, 10)
}
