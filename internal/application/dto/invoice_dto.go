package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices. Los totales NO se aceptan
// del cliente: se calculan en el servidor a partir de las líneas.
type CreateInvoiceRequest struct {
	ClientID string               `json:"client_id" validate:"required,uuid"`
	Prefix   string               `json:"prefix" validate:"omitempty,max=10"`
	Date     string               `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DueDate  string               `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Notes    string               `json:"notes" validate:"omitempty,max=1000"`
	Items    []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// InvoiceItemRequest línea de factura. UnitPrice/TaxRate nil = tomar del item.
type InvoiceItemRequest struct {
	ItemID    string           `json:"item_id" validate:"required,uuid"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	TaxRate   *decimal.Decimal `json:"tax_rate"`
}

// UpdateInvoiceStatusRequest body para PUT /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid cancelled"`
}

// InvoiceLineResponse línea de detalle en la respuesta.
type InvoiceLineResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse factura con detalle. Los campos *Display llegan formateados
// con la configuración de moneda del negocio.
type InvoiceResponse struct {
	ID                string                `json:"id"`
	BusinessID        string                `json:"business_id"`
	ClientID          string                `json:"client_id"`
	ClientName        string                `json:"client_name,omitempty"`
	Prefix            string                `json:"prefix,omitempty"`
	Number            int64                 `json:"number"`
	FullNumber        string                `json:"full_number"` // prefix + consecutivo
	Date              string                `json:"date"`
	DueDate           string                `json:"due_date,omitempty"`
	Status            string                `json:"status"`
	NetTotal          decimal.Decimal       `json:"net_total"`
	TaxTotal          decimal.Decimal       `json:"tax_total"`
	GrandTotal        decimal.Decimal       `json:"grand_total"`
	GrandTotalDisplay string                `json:"grand_total_display"`
	Notes             string                `json:"notes,omitempty"`
	Lines             []InvoiceLineResponse `json:"lines,omitempty"`
}

// InvoiceListResponse listado paginado de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
