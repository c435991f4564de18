package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/application/logistics"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/pkg/validate"
)

// DeliveryHandler maneja las remisiones del negocio activo (rol deliver y
// superiores via canManageLogistics).
type DeliveryHandler struct {
	uc *logistics.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *logistics.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Create crea una remisión agrupando facturas del mismo cliente.
// POST /api/delivery-notes
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validate.FieldErrors(err)})
	}
	out, err := h.uc.Create(c.Context(), GetBusinessID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las facturas deben existir, ser del mismo cliente y no estar anuladas"})
		}
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una remisión.
// GET /api/delivery-notes/:id
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetBusinessID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "remisión no encontrada"})
	}
	return c.JSON(out)
}

// List lista remisiones; query status filtra por estado.
// GET /api/delivery-notes
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(GetBusinessID(c), c.Query("status"), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// MarkDelivered confirma la entrega. Idempotente: confirmar una remisión ya
// entregada responde 204 igual.
// PUT /api/delivery-notes/:id/delivered
func (h *DeliveryHandler) MarkDelivered(c *fiber.Ctx) error {
	if err := h.uc.MarkDelivered(GetBusinessID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina una remisión; solo pendientes.
// DELETE /api/delivery-notes/:id
func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "solo se pueden eliminar remisiones pendientes"})
		}
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
