package usecase

import (
	"github.com/tu-usuario/billing-pro/internal/application/billing"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/application/search"
	"github.com/tu-usuario/billing-pro/internal/domain/money"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// searchLimit resultados máximos por categoría en la búsqueda global.
const searchLimit = 5

// GlobalSearchUseCase búsqueda global del header: clientes, items y facturas
// en una sola llamada. El frontend hace debounce (~300ms); si dos respuestas
// se cruzan gana la última (no hay garantía de orden, y no hace falta).
type GlobalSearchUseCase struct {
	clientRepo  repository.ClientRepository
	itemRepo    repository.ItemRepository
	invoiceRepo repository.InvoiceRepository
	bizRepo     repository.BusinessRepository
}

// NewGlobalSearchUseCase construye el caso de uso.
func NewGlobalSearchUseCase(
	clientRepo repository.ClientRepository,
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
	bizRepo repository.BusinessRepository,
) *GlobalSearchUseCase {
	return &GlobalSearchUseCase{
		clientRepo:  clientRepo,
		itemRepo:    itemRepo,
		invoiceRepo: invoiceRepo,
		bizRepo:     bizRepo,
	}
}

// Search ejecuta la búsqueda en las tres categorías con el término normalizado.
// Un término vacío devuelve el resultado vacío sin tocar la base.
func (uc *GlobalSearchUseCase) Search(businessID, q string) (*dto.SearchResponse, error) {
	out := &dto.SearchResponse{
		Query:    q,
		Clients:  []dto.ClientResponse{},
		Items:    []dto.ItemResponse{},
		Invoices: []dto.InvoiceResponse{},
	}
	norm := search.Normalize(q)
	if norm == "" {
		return out, nil
	}

	biz, err := uc.bizRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}

	clients, err := uc.clientRepo.Search(businessID, norm, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		out.Clients = append(out.Clients, *ToClientResponse(c))
	}

	items, err := uc.itemRepo.Search(businessID, norm, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		resp := dto.ItemResponse{
			ID:         it.ID,
			BusinessID: it.BusinessID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			TaxRate:    it.TaxRate,
			Unit:       it.Unit,
			TrackStock: it.TrackStock,
			Stock:      it.Stock,
			Status:     it.Status,
		}
		if biz != nil {
			resp.UnitPriceDisplay = money.FormatAmount(it.UnitPrice, biz.Currency, &biz.CurrencyFormat)
		}
		out.Items = append(out.Items, resp)
	}

	invoices, err := uc.invoiceRepo.Search(businessID, norm, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		resp := dto.InvoiceResponse{
			ID:         inv.ID,
			BusinessID: inv.BusinessID,
			ClientID:   inv.ClientID,
			Prefix:     inv.Prefix,
			Number:     inv.Number,
			FullNumber: billing.FullNumber(inv),
			Date:       inv.Date.Format("2006-01-02"),
			Status:     inv.Status,
			NetTotal:   inv.NetTotal,
			TaxTotal:   inv.TaxTotal,
			GrandTotal: inv.GrandTotal,
		}
		if biz != nil {
			resp.GrandTotalDisplay = money.FormatAmount(inv.GrandTotal, biz.Currency, &biz.CurrencyFormat)
		}
		out.Invoices = append(out.Invoices, resp)
	}
	return out, nil
}
