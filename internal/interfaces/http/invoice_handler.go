package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/billing"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/pkg/validate"
)

// InvoiceHandler maneja las facturas del negocio activo.
type InvoiceHandler struct {
	createUC *billing.CreateInvoiceUseCase
	uc       *billing.InvoiceUseCase
	pdfUC    *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(createUC *billing.CreateInvoiceUseCase, uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{createUC: createUC, uc: uc, pdfUC: pdfUC}
}

// Create emite una factura: asigna consecutivo, congela precios de las líneas
// y descuenta stock en una sola transacción. Los totales se calculan aquí,
// nunca se aceptan del cliente.
// POST /api/invoices (requiere canManage)
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validate.FieldErrors(err)})
	}
	out, err := h.createUC.CreateInvoice(c.Context(), GetBusinessID(c), in)
	if err != nil {
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para uno de los items"})
		}
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una factura con sus líneas.
// GET /api/invoices/:id (requiere canViewFinancials)
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetBusinessID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// List lista facturas; query status filtra por estado.
// GET /api/invoices (requiere canViewFinancials)
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(GetBusinessID(c), c.Query("status"), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus aplica una transición de estado (draft→sent|cancelled,
// sent→paid|cancelled). Transición inválida responde 409 CONFLICT.
// PUT /api/invoices/:id/status (requiere canManage)
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validate.FieldErrors(err)})
	}
	if err := h.uc.UpdateStatus(GetBusinessID(c), c.Params("id"), in.Status); err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
		}
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina una factura; solo borradores.
// DELETE /api/invoices/:id (requiere canDelete)
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "solo se pueden eliminar borradores"})
		}
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF genera y descarga la representación gráfica de la factura.
// GET /api/invoices/:id/pdf (requiere canViewFinancials)
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdfUC.GenerateInvoicePDF(c.Context(), GetBusinessID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="factura-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}
