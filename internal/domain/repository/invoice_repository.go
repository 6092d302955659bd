package repository

import "github.com/jhoicas/registro-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// Update actualiza únicamente customer_id, amount y status.
	// La fecha original de la factura se conserva.
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
}
