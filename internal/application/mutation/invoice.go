package mutation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/domain/entity"
	"github.com/jhoicas/registro-api/internal/domain/form"
	"github.com/jhoicas/registro-api/internal/domain/repository"
)

// InvoiceMutations handlers de mutación de facturas: validar → derivar →
// persistir → invalidar caché → navegar. Cada invocación es independiente y
// sin estado; no hay reintentos automáticos.
type InvoiceMutations struct {
	repo  repository.InvoiceRepository
	cache ViewCache
	now   func() time.Time
}

// NewInvoiceMutations construye los handlers de factura.
func NewInvoiceMutations(repo repository.InvoiceRepository, cache ViewCache) *InvoiceMutations {
	return &InvoiceMutations{repo: repo, cache: cache, now: time.Now}
}

// SetClock reemplaza la fuente de tiempo para derivar la fecha de la factura.
func (m *InvoiceMutations) SetClock(now func() time.Time) { m.now = now }

// Create valida el form (esquema sin id ni date), deriva centavos y la fecha
// del día, e inserta la factura con un id recién generado. En éxito invalida
// la vista de facturas y navega a ella.
func (m *InvoiceMutations) Create(ctx context.Context, prev *dto.MutationResult, fields *form.Values) Outcome {
	res := InvoiceFormSchema.Validate(fields)
	if !res.OK() {
		return fail(&dto.MutationResult{Errors: res.Errors, Message: MsgInvoiceMissingFields})
	}

	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: res.Data.Text("customerId"),
		Amount:     AmountToCents(res.Data.Decimal("amount")),
		Status:     res.Data.Text("status"),
		Date:       DateStamp(m.now()),
	}
	if err := m.repo.Create(inv); err != nil {
		// Fallo de sistema, no corregible por el usuario: sin errores por campo.
		return fail(&dto.MutationResult{Message: MsgInvoiceCreateDB})
	}

	_ = m.cache.Invalidate(ctx, ViewInvoices)
	return navigate(ViewInvoices)
}

// Update valida con el mismo esquema que Create y actualiza por id solo
// customer_id, amount y status; la fecha original no se recalcula.
func (m *InvoiceMutations) Update(ctx context.Context, id string, prev *dto.MutationResult, fields *form.Values) Outcome {
	res := InvoiceFormSchema.Validate(fields)
	if !res.OK() {
		// El texto dice "Create" también en update: contrato verbatim con la UI.
		return fail(&dto.MutationResult{Errors: res.Errors, Message: MsgInvoiceMissingFields})
	}

	inv := &entity.Invoice{
		ID:         id,
		CustomerID: res.Data.Text("customerId"),
		Amount:     AmountToCents(res.Data.Decimal("amount")),
		Status:     res.Data.Text("status"),
	}
	if err := m.repo.Update(inv); err != nil {
		return fail(&dto.MutationResult{Message: MsgInvoiceUpdateDB})
	}

	_ = m.cache.Invalidate(ctx, ViewInvoices)
	return navigate(ViewInvoices)
}

// Delete elimina por id, sin fase de validación: el id viene de una acción de
// UI autenticada. Es el único handler que en éxito retorna un valor en vez de
// navegar (la lista se actualiza en sitio). En fallo no se invalida el caché.
func (m *InvoiceMutations) Delete(ctx context.Context, id string) Outcome {
	if err := m.repo.Delete(id); err != nil {
		return fail(&dto.MutationResult{Message: MsgInvoiceDeleteDB})
	}
	_ = m.cache.Invalidate(ctx, ViewInvoices)
	return Outcome{Result: &dto.MutationResult{Message: MsgInvoiceDeleted}}
}
