package mutation

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/domain/entity"
	"github.com/jhoicas/registro-api/internal/domain/form"
	"github.com/jhoicas/registro-api/internal/domain/repository"
)

// CustomerMutations handlers de mutación de clientes.
type CustomerMutations struct {
	repo  repository.CustomerRepository
	store ImageStore
	cache ViewCache
}

// NewCustomerMutations construye los handlers de cliente.
func NewCustomerMutations(repo repository.CustomerRepository, store ImageStore, cache ViewCache) *CustomerMutations {
	return &CustomerMutations{repo: repo, store: store, cache: cache}
}

// Create valida name/email/metadatos de la imagen, sube la imagen ANTES de
// generar el id e insertar, y persiste el cliente con la URL resultante.
//
// El fallo de subida se reporta como error de campo en image (corregible por
// el usuario sin reescribir el resto del form), no como error de base de
// datos. Subida e inserción no van en una transacción: si la inserción falla
// después de subir, queda un asset huérfano (inconsistencia aceptada).
func (m *CustomerMutations) Create(ctx context.Context, prev *dto.MutationResult, fields *form.Values) Outcome {
	res := CustomerFormSchema.Validate(fields)
	if !res.OK() {
		return fail(&dto.MutationResult{Errors: res.Errors, Message: MsgCustomerMissingFields})
	}

	name := res.Data.Text("name")
	imageURL, err := m.store.Save(ctx, res.Data.File("image"), name)
	if err != nil {
		return fail(&dto.MutationResult{
			Errors:  form.FieldErrors{"image": {MsgUploadFailed}},
			Message: MsgCustomerMissingFields,
		})
	}

	customer := &entity.Customer{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    res.Data.Text("email"),
		ImageURL: imageURL,
	}
	if err := m.repo.Create(customer); err != nil {
		return fail(&dto.MutationResult{Message: MsgCustomerCreateDB})
	}

	_ = m.cache.Invalidate(ctx, ViewCustomers)
	return navigate(ViewCustomers)
}
