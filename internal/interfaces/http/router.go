package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastell/tienda-api/internal/application/auth"
	"github.com/jcastell/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
}

// Router registra las rutas de la API. Cada recurso cuelga de un único path
// con All: el despacho por método (incluidos OPTIONS y 405 con cuerpo JSON)
// es responsabilidad del handler, no del router.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.All("/auth", NewAuthHandler(deps.AuthUC).Handle)
	api.All("/categories", NewCategoryHandler(deps.CategoryUC).Handle)
	api.All("/products", NewProductHandler(deps.ProductUC).Handle)
}
