package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-api/internal/application/auth"
	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/internal/domain"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	mut *mutation.AuthMutations
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, mut *mutation.AuthMutations) *AuthHandler {
	return &AuthHandler{uc: uc, mut: mut}
}

// Login POST /api/auth/login — form con email y password. En éxito setea el
// cookie de sesión y redirige al dashboard; en fallo responde el mensaje de
// la mutación ("Invalid credentials." / "Something went wrong.").
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	fields, err := DecodeForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "form inválido"})
	}
	out, err := h.mut.Authenticate(c.UserContext(), nil, fields)
	if err != nil {
		// Fallo de infraestructura, no de credenciales.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out.Navigate != "" {
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    out.Session.Token,
			Expires:  out.Session.ExpiresAt,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
		return c.Redirect(out.Navigate, fiber.StatusSeeOther)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(out.Result)
}

// Register POST /api/auth/register — body JSON.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	user, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Logout POST /api/auth/logout — expira el cookie de sesión.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(SessionCookie)
	return c.SendStatus(fiber.StatusNoContent)
}
