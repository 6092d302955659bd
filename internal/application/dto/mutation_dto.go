package dto

import "github.com/jhoicas/registro-api/internal/domain/form"

// MutationResult reporte de fallo de una mutación (o del único éxito con
// valor: el delete de factura). Errors trae los mensajes por campo cuando el
// fallo es corregible por el usuario; en fallos de sistema solo viaja Message.
type MutationResult struct {
	Errors  form.FieldErrors `json:"errors,omitempty"`
	Message string           `json:"message"`
}

// InvoiceResponse factura en respuestas de listado y detalle.
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"` // centavos
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// CustomerResponse cliente en respuestas de listado.
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}
