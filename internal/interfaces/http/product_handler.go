package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jcastell/tienda-api/internal/application/dto"
	"github.com/jcastell/tienda-api/internal/application/usecase"
	"github.com/jcastell/tienda-api/internal/domain"
)

// ProductHandler maneja lecturas, alta y actualización parcial de productos
// sobre un único endpoint con despacho por método.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Handle despacha por método. El preflight anuncia DELETE por compatibilidad
// con el cliente aunque el recurso no lo sirve.
func (h *ProductHandler) Handle(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodOptions:
		return preflight(c, "GET, POST, PUT, DELETE, OPTIONS", "Content-Type, X-User-Id")
	case fiber.MethodGet:
		return h.get(c)
	case fiber.MethodPost:
		return h.create(c)
	case fiber.MethodPut:
		return h.update(c)
	default:
		return methodNotAllowed(c)
	}
}

// get godoc
// @Summary      Obtener un producto por id, o listar (todos o por categoría)
// @Tags         products
// @Produce      json
// @Param        id           query  int  false  "ID del producto"
// @Param        category_id  query  int  false  "ID de la categoría"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) get(c *fiber.Ctx) error {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parse id %q: %w", raw, err)
		}
		product, err := h.uc.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return respondError(c, fiber.StatusNotFound, "Product not found")
		}
		return respond(c, fiber.StatusOK, product)
	}

	var categoryID *int64
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parse category_id %q: %w", raw, err)
		}
		categoryID = &id
	}
	list, err := h.uc.List(categoryID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, list)
}

// create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fmt.Errorf("parse product body: %w", err)
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Article = strings.TrimSpace(in.Article)
	if in.Name == "" || in.Article == "" || !in.Price.GreaterThan(decimal.Zero) {
		return respondError(c, fiber.StatusBadRequest, "Name, article and valid price required")
	}
	created, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, created)
}

// update godoc
// @Summary      Actualización parcial de producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProductRequest  true  "id y subconjunto de campos a cambiar"
// @Success      200   {object}  dto.UpdateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products [put]
func (h *ProductHandler) update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fmt.Errorf("parse product body: %w", err)
	}
	if in.ID == nil {
		return respondError(c, fiber.StatusBadRequest, "Product ID required")
	}
	if err := h.uc.Update(c.Context(), *in.ID, in); err != nil {
		if errors.Is(err, domain.ErrNoUpdatableFields) {
			return respondError(c, fiber.StatusBadRequest, "No fields to update")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Product not found")
		}
		return err
	}
	return respond(c, fiber.StatusOK, dto.UpdateProductResponse{Success: true, ID: *in.ID})
}
