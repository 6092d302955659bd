package mutation_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/registro-api/internal/application/auth"
	"github.com/jhoicas/registro-api/internal/domain/entity"
	"github.com/jhoicas/registro-api/internal/domain/form"
)

// errBoom simula un fallo de infraestructura genérico en los fakes.
var errBoom = errors.New("boom")

// fakeInvoiceRepo repositorio de facturas en memoria para los tests de
// mutación. failCreate/failUpdate/failDelete fuerzan el fallo de DB.
type fakeInvoiceRepo struct {
	created    []*entity.Invoice
	updated    []*entity.Invoice
	deleted    []string
	failCreate bool
	failUpdate bool
	failDelete bool
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if f.failCreate {
		return errBoom
	}
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	if f.failUpdate {
		return errBoom
	}
	f.updated = append(f.updated, inv)
	return nil
}

func (f *fakeInvoiceRepo) Delete(id string) error {
	if f.failDelete {
		return errBoom
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return nil, nil }

func (f *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) { return nil, nil }

// fakeCustomerRepo repositorio de clientes en memoria.
type fakeCustomerRepo struct {
	created    []*entity.Customer
	failCreate bool
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	if f.failCreate {
		return errBoom
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) { return nil, nil }

func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }

// fakeViewCache registra las vistas invalidadas.
type fakeViewCache struct {
	invalidated []string
	failNext    bool
}

func (f *fakeViewCache) Get(ctx context.Context, view string) ([]byte, bool) { return nil, false }

func (f *fakeViewCache) Set(ctx context.Context, view string, payload []byte, ttl time.Duration) {}

func (f *fakeViewCache) Invalidate(ctx context.Context, view string) error {
	if f.failNext {
		f.failNext = false
		return errBoom
	}
	f.invalidated = append(f.invalidated, view)
	return nil
}

// fakeImageStore registra las subidas y retorna una URL determinista.
type fakeImageStore struct {
	saved    []string // displayName de cada subida
	failSave bool
}

func (f *fakeImageStore) Save(ctx context.Context, img *form.File, displayName string) (string, error) {
	if f.failSave {
		return "", errBoom
	}
	f.saved = append(f.saved, displayName)
	return "/customers/" + displayName, nil
}

// fakeAuthenticator colaborador de sign-in con respuesta programada.
type fakeAuthenticator struct {
	session *auth.Session
	err     error
}

func (f *fakeAuthenticator) SignIn(ctx context.Context, provider string, fields *form.Values) (*auth.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

// invoiceForm construye el form válido típico de factura.
func invoiceForm(customerID, amount, status string) *form.Values {
	vals := form.NewValues()
	vals.Set("customerId", form.Text(customerID))
	vals.Set("amount", form.Text(amount))
	vals.Set("status", form.Text(status))
	return vals
}

// customerForm construye el form válido típico de cliente.
func customerForm(name, email string, image form.File) *form.Values {
	vals := form.NewValues()
	vals.Set("name", form.Text(name))
	vals.Set("email", form.Text(email))
	vals.Set("image", form.FileValue(image))
	return vals
}

// pngImage imagen png válida de tamaño dado para los tests.
func pngImage(size int64) form.File {
	return form.File{Name: "avatar.png", MediaType: "image/png", Size: size, Data: []byte{0x89}}
}
