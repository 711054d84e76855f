package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastell/tienda-api/internal/application/usecase"
)

// CategoryHandler maneja el listado de categorías (solo GET).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Handle godoc
// @Summary      Listar categorías con conteos de productos
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      405  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) Handle(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodOptions:
		return preflight(c, "GET, OPTIONS", "Content-Type")
	case fiber.MethodGet:
		list, err := h.uc.List()
		if err != nil {
			return err
		}
		return respond(c, fiber.StatusOK, list)
	default:
		return methodNotAllowed(c)
	}
}
