package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastell/tienda-api/internal/application/auth"
	"github.com/jcastell/tienda-api/internal/application/dto"
	"github.com/jcastell/tienda-api/internal/domain"
)

// AuthHandler maneja registro y login sobre un único endpoint.
// El despacho por método y por action lo hace el handler, no el router:
// OPTIONS responde el preflight, POST ejecuta la acción y cualquier otro
// método (o action desconocida) devuelve 405 con cuerpo JSON.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Handle godoc
// @Summary      Registro y login de usuarios
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuthRequest  true  "action (register|login), username, password, email opcional"
// @Success      200   {object}  dto.AuthResponse
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Handle(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodOptions:
		return preflight(c, "GET, POST, OPTIONS", "Content-Type, X-User-Id")
	case fiber.MethodPost:
		return h.post(c)
	default:
		return methodNotAllowed(c)
	}
}

func (h *AuthHandler) post(c *fiber.Ctx) error {
	var in dto.AuthRequest
	if err := c.BodyParser(&in); err != nil {
		// JSON malformado no se maneja localmente: 500 vía error handler
		return fmt.Errorf("parse auth body: %w", err)
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Password = strings.TrimSpace(in.Password)
	if in.Username == "" || in.Password == "" {
		return respondError(c, fiber.StatusBadRequest, "Username and password required")
	}

	switch in.Action {
	case "register":
		in.Email = strings.TrimSpace(in.Email)
		user, err := h.uc.Register(c.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrUsernameTaken) {
				return respondError(c, fiber.StatusBadRequest, "Username already exists")
			}
			return err
		}
		return respond(c, fiber.StatusCreated, dto.AuthResponse{Success: true, User: *user})
	case "login":
		user, err := h.uc.Login(in)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return respondError(c, fiber.StatusUnauthorized, "Invalid credentials")
			}
			return err
		}
		return respond(c, fiber.StatusOK, dto.AuthResponse{Success: true, User: *user})
	default:
		// action desconocida cae al mismo 405 que un verbo no soportado
		return methodNotAllowed(c)
	}
}
