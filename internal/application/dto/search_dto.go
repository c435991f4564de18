package dto

// SearchResponse resultado de la búsqueda global. El frontend hace debounce
// (~300ms) antes de llamar; aquí solo se consulta y agrupa.
type SearchResponse struct {
	Query    string            `json:"query"`
	Clients  []ClientResponse  `json:"clients"`
	Items    []ItemResponse    `json:"items"`
	Invoices []InvoiceResponse `json:"invoices"`
}
