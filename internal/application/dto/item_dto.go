package dto

import "github.com/shopspring/decimal"

// CreateItemRequest body para POST /api/items. Si TaxRate va nil se aplica la
// tasa por defecto del negocio.
type CreateItemRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	Unit        string           `json:"unit" validate:"omitempty,max=20"`
	TrackStock  bool             `json:"track_stock"`
	Stock       decimal.Decimal  `json:"stock"`
}

// UpdateItemRequest body para PUT /api/items/:id. Punteros nil = sin cambio.
type UpdateItemRequest struct {
	Name        string           `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	Unit        *string          `json:"unit"`
	TrackStock  *bool            `json:"track_stock"`
	Stock       *decimal.Decimal `json:"stock"`
	Status      string           `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ItemResponse item en respuestas. UnitPriceDisplay es el precio ya formateado
// con la configuración de moneda del negocio (el frontend lo muestra tal cual).
type ItemResponse struct {
	ID               string          `json:"id"`
	BusinessID       string          `json:"business_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	UnitPriceDisplay string          `json:"unit_price_display"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	Unit             string          `json:"unit,omitempty"`
	TrackStock       bool            `json:"track_stock"`
	Stock            decimal.Decimal `json:"stock"`
	Status           string          `json:"status"`
}

// ItemListResponse listado paginado de items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
