package http_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/registro-api/internal/domain/entity"
	"github.com/jhoicas/registro-api/internal/domain/form"
)

var errDB = errors.New("db caída")

// memInvoiceRepo repositorio de facturas en memoria para los tests HTTP.
type memInvoiceRepo struct {
	mu       sync.Mutex
	invoices []*entity.Invoice
	failAll  bool
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	if r.failAll {
		return errDB
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = append(r.invoices, inv)
	return nil
}

func (r *memInvoiceRepo) Update(inv *entity.Invoice) error {
	if r.failAll {
		return errDB
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.invoices {
		if existing.ID == inv.ID {
			updated := *existing
			updated.CustomerID = inv.CustomerID
			updated.Amount = inv.Amount
			updated.Status = inv.Status
			r.invoices[i] = &updated
			return nil
		}
	}
	return nil
}

func (r *memInvoiceRepo) Delete(id string) error {
	if r.failAll {
		return errDB
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.invoices {
		if existing.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	if r.failAll {
		return nil, errDB
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invoices {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, nil
}

func (r *memInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	if r.failAll {
		return nil, errDB
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.invoices) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.invoices) {
		end = len(r.invoices)
	}
	return r.invoices[offset:end], nil
}

// memCustomerRepo repositorio de clientes en memoria.
type memCustomerRepo struct {
	mu        sync.Mutex
	customers []*entity.Customer
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, c)
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.customers) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.customers) {
		end = len(r.customers)
	}
	return r.customers[offset:end], nil
}

// memUserRepo repositorio de usuarios en memoria.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.users == nil {
		r.users = make(map[string]*entity.User)
	}
	r.users[u.Email] = u
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[email], nil
}

// nopImageStore acepta cualquier imagen y retorna una URL determinista.
type nopImageStore struct{}

func (nopImageStore) Save(ctx context.Context, img *form.File, displayName string) (string, error) {
	return "/customers/" + displayName, nil
}

// recordViewCache registra las vistas invalidadas (sin almacenamiento).
type recordViewCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *recordViewCache) Get(ctx context.Context, view string) ([]byte, bool) { return nil, false }

func (c *recordViewCache) Set(ctx context.Context, view string, payload []byte, ttl time.Duration) {}

func (c *recordViewCache) Invalidate(ctx context.Context, view string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, view)
	return nil
}

func (c *recordViewCache) views() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.invalidated...)
}

// stubPDF generador de comprobantes trivial.
type stubPDF struct{}

func (stubPDF) GenerateReceipt(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}
