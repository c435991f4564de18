package dto

// CreateDeliveryNoteRequest body para POST /api/delivery-notes. Agrupa una o
// más facturas del mismo cliente en un envío.
type CreateDeliveryNoteRequest struct {
	ClientID   string   `json:"client_id" validate:"required,uuid"`
	InvoiceIDs []string `json:"invoice_ids" validate:"required,min=1,dive,uuid"`
	Address    string   `json:"address" validate:"omitempty,max=300"`
	Notes      string   `json:"notes" validate:"omitempty,max=1000"`
	Date       string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// DeliveryNoteResponse remisión en respuestas.
type DeliveryNoteResponse struct {
	ID         string   `json:"id"`
	BusinessID string   `json:"business_id"`
	ClientID   string   `json:"client_id"`
	ClientName string   `json:"client_name,omitempty"`
	Number     int64    `json:"number"`
	Date       string   `json:"date"`
	Status     string   `json:"status"`
	Address    string   `json:"address,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	InvoiceIDs []string `json:"invoice_ids"`
}

// DeliveryNoteListResponse listado paginado de remisiones.
type DeliveryNoteListResponse struct {
	Items []DeliveryNoteResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
