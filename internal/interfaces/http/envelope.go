package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastell/tienda-api/internal/application/dto"
)

// Helpers de envelope: toda respuesta (éxito o error) sale por aquí para que
// los headers CORS sean uniformes en los tres recursos.

// respond serializa body como JSON con el status dado y Access-Control-Allow-Origin: *.
func respond(c *fiber.Ctx, status int, body any) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return c.Status(status).JSON(body)
}

// respondError responde {"error": msg} con el status dado.
func respondError(c *fiber.Ctx, status int, msg string) error {
	return respond(c, status, dto.ErrorResponse{Error: msg})
}

// methodNotAllowed respuesta uniforme para verbos no soportados (y acciones
// desconocidas en auth, que caen al mismo caso).
func methodNotAllowed(c *fiber.Ctx) error {
	return respondError(c, fiber.StatusMethodNotAllowed, "Method not allowed")
}

// preflight responde el OPTIONS de CORS: 200, cuerpo vacío, sin tocar la base.
// methods y headers van acotados a lo que soporta cada recurso.
func preflight(c *fiber.Ctx, methods, headers string) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, methods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, headers)
	c.Set(fiber.HeaderAccessControlMaxAge, "86400")
	// SendStatus rellenaría el cuerpo con "OK"; el preflight va vacío
	c.Status(fiber.StatusOK)
	return c.SendString("")
}
