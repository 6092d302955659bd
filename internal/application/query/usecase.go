package query

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/internal/domain"
	"github.com/jhoicas/registro-api/internal/domain/entity"
	"github.com/jhoicas/registro-api/internal/domain/repository"
)

// InvoicePDFGenerator genera el comprobante PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateReceipt(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}

// ListUseCase lado de lectura del dashboard: listados con read-through sobre
// el ViewCache, de modo que la invalidación de las mutaciones tenga efecto
// observable (la siguiente lectura va a la DB).
type ListUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	cache     mutation.ViewCache
	pdf       InvoicePDFGenerator
	ttl       time.Duration
}

// NewListUseCase construye el caso de uso de lectura.
func NewListUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	cache mutation.ViewCache,
	pdf InvoicePDFGenerator,
	ttl time.Duration,
) *ListUseCase {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ListUseCase{invoices: invoices, customers: customers, cache: cache, pdf: pdf, ttl: ttl}
}

// Invoices lista facturas. Solo la primera página por defecto se cachea bajo
// la clave de la vista; las demás páginas van siempre a la DB.
func (uc *ListUseCase) Invoices(ctx context.Context, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	cacheable := page.Limit == 20 && page.Offset == 0

	if cacheable {
		if payload, ok := uc.cache.Get(ctx, mutation.ViewInvoices); ok {
			var out []*dto.InvoiceResponse
			if err := json.Unmarshal(payload, &out); err == nil {
				return out, nil
			}
		}
	}

	list, err := uc.invoices.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}

	if cacheable {
		if payload, err := json.Marshal(out); err == nil {
			uc.cache.Set(ctx, mutation.ViewInvoices, payload, uc.ttl)
		}
	}
	return out, nil
}

// Customers lista clientes con el mismo read-through que Invoices.
func (uc *ListUseCase) Customers(ctx context.Context, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	cacheable := page.Limit == 20 && page.Offset == 0

	if cacheable {
		if payload, ok := uc.cache.Get(ctx, mutation.ViewCustomers); ok {
			var out []*dto.CustomerResponse
			if err := json.Unmarshal(payload, &out); err == nil {
				return out, nil
			}
		}
	}

	list, err := uc.customers.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, ImageURL: c.ImageURL})
	}

	if cacheable {
		if payload, err := json.Marshal(out); err == nil {
			uc.cache.Set(ctx, mutation.ViewCustomers, payload, uc.ttl)
		}
	}
	return out, nil
}

// Invoice detalle de una factura (para el form de edición). Sin caché.
func (uc *ListUseCase) Invoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// InvoiceReceipt genera el comprobante PDF de la factura con su cliente.
func (uc *ListUseCase) InvoiceReceipt(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByID(inv.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateReceipt(ctx, inv, customer)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date,
	}
}
