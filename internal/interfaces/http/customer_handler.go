package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/internal/application/query"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	mut  *mutation.CustomerMutations
	list *query.ListUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(mut *mutation.CustomerMutations, list *query.ListUseCase) *CustomerHandler {
	return &CustomerHandler{mut: mut, list: list}
}

// Create POST /api/customers — form multipart con name, email e image.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	fields, err := DecodeForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "form inválido"})
	}
	return renderOutcome(c, h.mut.Create(c.UserContext(), nil, fields))
}

// List GET /api/customers?limit=20&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	list, err := h.list.Customers(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
