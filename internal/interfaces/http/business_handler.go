package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/application/usecase"
	"github.com/tu-usuario/billing-pro/internal/domain/money"
	"github.com/tu-usuario/billing-pro/pkg/validate"
)

// BusinessHandler maneja los negocios (tenants) y su configuración de moneda.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create crea un negocio; el usuario autenticado queda como admin.
// POST /api/businesses
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validate.FieldErrors(err)})
	}
	out, err := h.uc.Create(c.Context(), GetUser(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine lista los negocios donde el usuario tiene membresía.
// GET /api/businesses
func (h *BusinessHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Get devuelve el negocio activo (header X-Business-ID).
// GET /api/businesses/current
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetBusinessID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
	}
	return c.JSON(out)
}

// Update actualiza datos y formato de moneda del negocio activo.
// PUT /api/businesses/current (requiere canManageSettings)
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validate.FieldErrors(err)})
	}
	out, err := h.uc.Update(GetBusinessID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// FormatPreview renderiza un monto con una configuración propuesta, para la
// vista previa en vivo del formulario de moneda. Acepta la configuración en
// el body (opcional) y amount/currency por query.
// GET|POST /api/businesses/format-preview
func (h *BusinessHandler) FormatPreview(c *fiber.Ctx) error {
	currency := c.Query("currency")
	if currency == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "currency es requerido"})
	}
	amountStr := c.Query("amount", "1234567.89")
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount inválido"})
	}
	var format *dto.CurrencyFormatDTO
	if len(c.Body()) > 0 {
		var in dto.CurrencyFormatDTO
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		if err := validate.Struct(in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validate.FieldErrors(err)})
		}
		format = &in
	}
	return c.JSON(h.uc.FormatPreview(amount, currency, format))
}

// Currencies devuelve la tabla de metadatos de monedas soportadas.
// GET /api/currencies
func (h *BusinessHandler) Currencies(c *fiber.Ctx) error {
	all := money.All()
	out := make([]dto.CurrencyResponse, 0, len(all))
	for _, cur := range all {
		out = append(out, dto.CurrencyResponse{
			Code:       cur.Code,
			Name:       cur.Name,
			Symbol:     cur.Symbol,
			Digits:     cur.Digits,
			GroupSep:   cur.GroupSep,
			DecimalSep: cur.DecimalSep,
		})
	}
	return c.JSON(out)
}
