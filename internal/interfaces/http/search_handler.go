package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/usecase"
)

// SearchHandler maneja la búsqueda global del negocio activo.
type SearchHandler struct {
	uc *usecase.GlobalSearchUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *usecase.GlobalSearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search busca clientes, items y facturas por término (insensible a acentos
// y mayúsculas). El debounce lo hace el frontend; aquí cada petición consulta.
// GET /api/search?q=...
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(GetBusinessID(c), c.Query("q"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
