package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/internal/application/query"
	"github.com/jhoicas/registro-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	mut  *mutation.InvoiceMutations
	list *query.ListUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(mut *mutation.InvoiceMutations, list *query.ListUseCase) *InvoiceHandler {
	return &InvoiceHandler{mut: mut, list: list}
}

// Create POST /api/invoices — form con customerId, amount, status.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	fields, err := DecodeForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "form inválido"})
	}
	return renderOutcome(c, h.mut.Create(c.UserContext(), nil, fields))
}

// Update POST /api/invoices/:id — mismo form que Create.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	fields, err := DecodeForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "form inválido"})
	}
	return renderOutcome(c, h.mut.Update(c.UserContext(), c.Params("id"), nil, fields))
}

// Delete DELETE /api/invoices/:id — responde el mensaje de la mutación,
// 200 en borrado y 500 en fallo de base de datos.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	out := h.mut.Delete(c.UserContext(), c.Params("id"))
	status := fiber.StatusOK
	if out.Result.Message != mutation.MsgInvoiceDeleted {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(out.Result)
}

// List GET /api/invoices?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	list, err := h.list.Invoices(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.list.Invoice(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(inv)
}

// Receipt GET /api/invoices/:id/receipt — comprobante PDF.
func (h *InvoiceHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.list.InvoiceReceipt(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	return c.Send(pdfBytes)
}
