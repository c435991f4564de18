package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/money"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de emisión: el txRunner pasa los mismos fakes como repos "en tx"
// ──────────────────────────────────────────────────────────────────────────────

type fakeBillingTx struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.ItemRepository
}

func (t *fakeBillingTx) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return fn(t.invoiceRepo, t.itemRepo)
}

type fakeCreateInvoiceRepo struct {
	repository.InvoiceRepository
	nextNumber int64
	created    *entity.Invoice
	lines      []*entity.InvoiceLine
}

func (r *fakeCreateInvoiceRepo) NextNumber(string) (int64, error) {
	r.nextNumber++
	return r.nextNumber, nil
}

func (r *fakeCreateInvoiceRepo) Create(inv *entity.Invoice, lines []*entity.InvoiceLine) error {
	r.created = inv
	r.lines = lines
	return nil
}

type fakeItemCatalog struct {
	repository.ItemRepository
	items       map[string]*entity.Item
	adjustments map[string]decimal.Decimal
	stockErr    error
}

func (r *fakeItemCatalog) GetByID(id string) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *fakeItemCatalog) AdjustStock(id string, delta decimal.Decimal) error {
	if r.stockErr != nil {
		return r.stockErr
	}
	if r.adjustments == nil {
		r.adjustments = make(map[string]decimal.Decimal)
	}
	r.adjustments[id] = r.adjustments[id].Add(delta)
	return nil
}

type stubClientRepo struct {
	repository.ClientRepository
	client *entity.Client
}

func (r *stubClientRepo) GetByID(string) (*entity.Client, error) { return r.client, nil }

type stubBusinessRepo struct {
	repository.BusinessRepository
	biz *entity.Business
}

func (r *stubBusinessRepo) GetByID(string) (*entity.Business, error) { return r.biz, nil }

const testBizID = "b1"

func buildCreateUC(items map[string]*entity.Item) (*CreateInvoiceUseCase, *fakeCreateInvoiceRepo, *fakeItemCatalog) {
	invRepo := &fakeCreateInvoiceRepo{}
	catalog := &fakeItemCatalog{items: items}
	uc := NewCreateInvoiceUseCase(
		&fakeBillingTx{invoiceRepo: invRepo, itemRepo: catalog},
		&stubClientRepo{client: &entity.Client{ID: "c1", BusinessID: testBizID, Name: "Ana"}},
		&stubBusinessRepo{biz: &entity.Business{
			ID: testBizID, Currency: "USD", CurrencyFormat: money.DefaultFormat("USD"),
		}},
		catalog,
	)
	return uc, invRepo, catalog
}

func catalogItem(id, name string, price, taxRate string, trackStock bool) *entity.Item {
	return &entity.Item{
		ID:         id,
		BusinessID: testBizID,
		Name:       name,
		UnitPrice:  decimal.RequireFromString(price),
		TaxRate:    decimal.RequireFromString(taxRate),
		TrackStock: trackStock,
		Stock:      decimal.NewFromInt(100),
		Status:     "active",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_TotalesCalculadosEnServidor(t *testing.T) {
	uc, invRepo, _ := buildCreateUC(map[string]*entity.Item{
		"i1": catalogItem("i1", "Camiseta", "25.00", "19", false),
		"i2": catalogItem("i2", "Gorra", "10.00", "0", false),
	})

	out, err := uc.CreateInvoice(context.Background(), testBizID, dto.CreateInvoiceRequest{
		ClientID: "c1",
		Prefix:   "FV-",
		Items: []dto.InvoiceItemRequest{
			{ItemID: "i1", Quantity: decimal.NewFromInt(2)}, // 50.00 + 9.50 de impuesto
			{ItemID: "i2", Quantity: decimal.NewFromInt(3)}, // 30.00 sin impuesto
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("80").Equal(out.NetTotal), "neto = 2×25 + 3×10")
	assert.True(t, decimal.RequireFromString("9.5").Equal(out.TaxTotal), "impuesto = 50×19%")
	assert.True(t, decimal.RequireFromString("89.5").Equal(out.GrandTotal))
	assert.Equal(t, "$89.50", out.GrandTotalDisplay)
	assert.Equal(t, "FV-1", out.FullNumber, "primer consecutivo del negocio")
	assert.Equal(t, entity.InvoiceStatusDraft, out.Status)
	require.NotNil(t, invRepo.created)
	assert.Equal(t, int64(1), invRepo.created.Number)
}

func TestCreateInvoice_LineasCongelanPrecioYNombre(t *testing.T) {
	item := catalogItem("i1", "Camiseta", "25.00", "19", false)
	uc, invRepo, _ := buildCreateUC(map[string]*entity.Item{"i1": item})

	_, err := uc.CreateInvoice(context.Background(), testBizID, dto.CreateInvoiceRequest{
		ClientID: "c1",
		Items:    []dto.InvoiceItemRequest{{ItemID: "i1", Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	require.Len(t, invRepo.lines, 1)
	line := invRepo.lines[0]
	assert.Equal(t, "Camiseta", line.Name)
	assert.True(t, item.UnitPrice.Equal(line.UnitPrice))
	assert.True(t, item.TaxRate.Equal(line.TaxRate))
}

func TestCreateInvoice_PrecioOverridePorLinea(t *testing.T) {
	uc, invRepo, _ := buildCreateUC(map[string]*entity.Item{
		"i1": catalogItem("i1", "Camiseta", "25.00", "19", false),
	})

	override := decimal.RequireFromString("20.00")
	out, err := uc.CreateInvoice(context.Background(), testBizID, dto.CreateInvoiceRequest{
		ClientID: "c1",
		Items: []dto.InvoiceItemRequest{
			{ItemID: "i1", Quantity: decimal.NewFromInt(1), UnitPrice: &override},
		},
	})
	require.NoError(t, err)

	assert.True(t, override.Equal(out.NetTotal), "el precio de la petición pisa el del catálogo")
	assert.True(t, override.Equal(invRepo.lines[0].UnitPrice))
}

func TestCreateInvoice_DescuentaStockSoloConTracking(t *testing.T) {
	uc, _, catalog := buildCreateUC(map[string]*entity.Item{
		"i1": catalogItem("i1", "Camiseta", "25.00", "19", true),
		"i2": catalogItem("i2", "Servicio", "50.00", "19", false),
	})

	_, err := uc.CreateInvoice(context.Background(), testBizID, dto.CreateInvoiceRequest{
		ClientID: "c1",
		Items: []dto.InvoiceItemRequest{
			{ItemID: "i1", Quantity: decimal.NewFromInt(4)},
			{ItemID: "i2", Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(-4).Equal(catalog.adjustments["i1"]),
		"el item con tracking descuenta la cantidad facturada")
	_, touched := catalog.adjustments["i2"]
	assert.False(t, touched, "un servicio sin tracking no toca stock")
}

func TestCreateInvoice_SinStock_Falla(t *testing.T) {
	uc, invRepo, catalog := buildCreateUC(map[string]*entity.Item{
		"i1": catalogItem("i1", "Camiseta", "25.00", "19", true),
	})
	catalog.stockErr = domain.ErrInsufficientStock

	_, err := uc.CreateInvoice(context.Background(), testBizID, dto.CreateInvoiceRequest{
		ClientID: "c1",
		Items:    []dto.InvoiceItemRequest{{ItemID: "i1", Quantity: decimal.NewFromInt(999)}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, invRepo.created, "el error dentro de la tx impide persistir la factura")
}

func TestCreateInvoice_Validaciones(t *testing.T) {
	items := map[string]*entity.Item{
		"i1":       catalogItem("i1", "Camiseta", "25.00", "19", false),
		"inactivo": {ID: "inactivo", BusinessID: testBizID, Name: "Viejo", Status: "inactive", UnitPrice: decimal.NewFromInt(1)},
		"ajeno":    {ID: "ajeno", BusinessID: "otro-negocio", Name: "Ajeno", Status: "active", UnitPrice: decimal.NewFromInt(1)},
	}
	tests := []struct {
		name    string
		in      dto.CreateInvoiceRequest
		wantErr error
	}{
		{
			"sin líneas",
			dto.CreateInvoiceRequest{ClientID: "c1"},
			domain.ErrInvalidInput,
		},
		{
			"cantidad cero",
			dto.CreateInvoiceRequest{ClientID: "c1", Items: []dto.InvoiceItemRequest{{ItemID: "i1"}}},
			domain.ErrInvalidInput,
		},
		{
			"item inexistente",
			dto.CreateInvoiceRequest{ClientID: "c1", Items: []dto.InvoiceItemRequest{{ItemID: "nope", Quantity: decimal.NewFromInt(1)}}},
			domain.ErrNotFound,
		},
		{
			"item de otro negocio",
			dto.CreateInvoiceRequest{ClientID: "c1", Items: []dto.InvoiceItemRequest{{ItemID: "ajeno", Quantity: decimal.NewFromInt(1)}}},
			domain.ErrNotFound,
		},
		{
			"item inactivo",
			dto.CreateInvoiceRequest{ClientID: "c1", Items: []dto.InvoiceItemRequest{{ItemID: "inactivo", Quantity: decimal.NewFromInt(1)}}},
			domain.ErrConflict,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _ := buildCreateUC(items)
			_, err := uc.CreateInvoice(context.Background(), testBizID, tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
