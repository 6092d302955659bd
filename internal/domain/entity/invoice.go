package entity

// Estados válidos de una factura.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// InvoiceStatuses opciones aceptadas para el campo status del formulario.
var InvoiceStatuses = []string{InvoiceStatusPending, InvoiceStatusPaid}

// Invoice representa una factura del dashboard.
// Amount se guarda en unidades menores (centavos) para almacenamiento sin pérdida.
// Date se deriva en el servidor al crear la factura; nunca se recalcula en update.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64  // centavos
	Status     string // pending | paid
	Date       string // fecha ISO (YYYY-MM-DD)
}
