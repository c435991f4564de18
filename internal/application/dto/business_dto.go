package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyFormatDTO configuración de visualización de montos del negocio.
type CurrencyFormatDTO struct {
	Display    string `json:"display" validate:"omitempty,oneof=symbol code"`
	Position   string `json:"position" validate:"omitempty,oneof=left right"`
	Digits     int    `json:"digits" validate:"min=0,max=8"`
	GroupSep   string `json:"group_sep" validate:"max=3"`
	DecimalSep string `json:"decimal_sep" validate:"max=3"`
}

// CreateBusinessRequest body para POST /api/businesses. El creador queda como
// admin del negocio. Si CurrencyFormat va nil se siembra desde la tabla de
// metadatos de la moneda.
type CreateBusinessRequest struct {
	Name           string             `json:"name" validate:"required,min=1,max=200"`
	Email          string             `json:"email" validate:"omitempty,email"`
	Phone          string             `json:"phone" validate:"omitempty,max=30"`
	Address        string             `json:"address" validate:"omitempty,max=300"`
	LogoURL        string             `json:"logo_url" validate:"omitempty,url"`
	Currency       string             `json:"currency" validate:"required,len=3,uppercase"`
	CurrencyFormat *CurrencyFormatDTO `json:"currency_format"`
	DefaultTaxRate decimal.Decimal    `json:"default_tax_rate"`
}

// UpdateBusinessRequest body para PUT /api/businesses/:id (requiere canManageSettings).
type UpdateBusinessRequest struct {
	Name           string             `json:"name" validate:"omitempty,min=1,max=200"`
	Email          string             `json:"email" validate:"omitempty,email"`
	Phone          string             `json:"phone" validate:"omitempty,max=30"`
	Address        string             `json:"address" validate:"omitempty,max=300"`
	LogoURL        string             `json:"logo_url" validate:"omitempty,url"`
	Currency       string             `json:"currency" validate:"omitempty,len=3,uppercase"`
	CurrencyFormat *CurrencyFormatDTO `json:"currency_format"`
	DefaultTaxRate *decimal.Decimal   `json:"default_tax_rate"`
}

// BusinessResponse negocio en respuestas.
type BusinessResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Address        string            `json:"address,omitempty"`
	LogoURL        string            `json:"logo_url,omitempty"`
	Currency       string            `json:"currency"`
	CurrencyFormat CurrencyFormatDTO `json:"currency_format"`
	DefaultTaxRate decimal.Decimal   `json:"default_tax_rate"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// BusinessListResponse listado de negocios del usuario.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
}

// AddMemberRequest body para POST /api/businesses/members.
// Acepta referencia de negocio implícita (header X-Business-ID).
type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin manager viewer deliver"`
	Title string `json:"title" validate:"omitempty,max=100"`
}

// UpdateMemberRequest body para PUT /api/businesses/members/:id.
type UpdateMemberRequest struct {
	Role  string `json:"role" validate:"required,oneof=admin manager viewer deliver"`
	Title string `json:"title" validate:"omitempty,max=100"`
}

// MemberResponse integrante del equipo en respuestas.
type MemberResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"image_url,omitempty"`
	Role      string    `json:"role"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberListResponse listado del equipo.
type MemberListResponse struct {
	Items []MemberResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// FormatPreviewResponse respuesta de GET /api/businesses/format-preview:
// el monto renderizado con la configuración propuesta, para la vista previa
// en vivo del formulario de moneda.
type FormatPreviewResponse struct {
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// CurrencyResponse entrada de la tabla de metadatos para GET /api/currencies.
type CurrencyResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	Digits     int    `json:"digits"`
	GroupSep   string `json:"group_sep"`
	DecimalSep string `json:"decimal_sep"`
}
