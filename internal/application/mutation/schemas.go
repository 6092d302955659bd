package mutation

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/registro-api/internal/domain/entity"
	"github.com/jhoicas/registro-api/internal/domain/form"
)

// Mensajes de las mutaciones. El texto es contrato con el frontend: no
// cambiar sin coordinar con la UI.
const (
	MsgInvoiceMissingFields  = "Missing Fields. Failed to Create Invoice."
	MsgInvoiceCreateDB       = "Database Error: Failed to Create Invoice"
	MsgInvoiceUpdateDB       = "Database Error: Failed to Update Invoice"
	MsgInvoiceDeleteDB       = "Database Error: Failed to Delete Invoice"
	MsgInvoiceDeleted        = "Deleted Invoice"
	MsgCustomerMissingFields = "Missing Fields. Failed to Create Customer."
	MsgCustomerCreateDB      = "Database Error: Failed to Create Customer"
	MsgUploadFailed          = "Failed to upload image."
	MsgInvalidCredentials    = "Invalid credentials."
	MsgSomethingWentWrong    = "Something went wrong."
)

// Restricciones de la imagen de cliente. El mínimo (>1 byte) hace que un
// archivo ausente (tamaño 0) falle con el mensaje de "sube una imagen".
const (
	MinImageBytes = 1
	MaxImageBytes = 5_000_000 // 5mb, debe coincidir con el mensaje al usuario
)

// acceptedImageTypes media types aceptados para la imagen de cliente.
var acceptedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// fieldValidator validaciones sintácticas puntuales (email).
var fieldValidator = validator.New()

// invoiceSchema esquema completo de factura. El caller valida contra la
// versión sin id ni date: esos campos los genera el servidor.
var invoiceSchema = form.New(
	form.Field{Name: "id", Kind: form.KindText},
	form.Field{
		Name: "customerId", Kind: form.KindText,
		Missing: "Please select a customer",
	},
	form.Field{
		Name: "amount", Kind: form.KindDecimal,
		Missing: "Please enter an amount greater than $0.",
		Checks: []form.Check{
			{
				OK:      func(v any) bool { return v.(decimal.Decimal).GreaterThan(decimal.Zero) },
				Message: "Please enter an amount greater than $0.",
			},
		},
	},
	form.Field{
		Name: "status", Kind: form.KindEnum,
		Options: entity.InvoiceStatuses,
		Missing: "Please select an invoice status.",
	},
	form.Field{Name: "date", Kind: form.KindText},
)

// InvoiceFormSchema esquema que valida el form de crear/actualizar factura.
var InvoiceFormSchema = invoiceSchema.Omit("id", "date")

// customerSchema esquema completo de cliente. La imagen se valida contra los
// metadatos del archivo (tamaño y media type declarados), no su contenido.
var customerSchema = form.New(
	form.Field{Name: "id", Kind: form.KindText},
	form.Field{
		Name: "name", Kind: form.KindText,
		Missing: "Please enter a name.",
		Checks: []form.Check{
			{OK: func(v any) bool { return len(v.(string)) > 0 }, Message: "Please enter a name."},
			{OK: func(v any) bool { return len(v.(string)) <= 50 }, Message: "Name must be 50 characters or less."},
		},
	},
	form.Field{
		Name: "email", Kind: form.KindText,
		Missing: "Please enter a valid email.",
		Checks: []form.Check{
			{
				OK:      func(v any) bool { return fieldValidator.Var(v.(string), "required,email") == nil },
				Message: "Please enter a valid email.",
			},
		},
	},
	form.Field{
		Name: "image", Kind: form.KindFile,
		Checks: []form.Check{
			{
				OK:      func(v any) bool { return v.(*form.File).Size > MinImageBytes },
				Message: "Please upload an image.",
			},
			{
				OK:      func(v any) bool { return v.(*form.File).Size <= MaxImageBytes },
				Message: "Max file size is 5mb",
			},
			{
				OK: func(v any) bool {
					t := v.(*form.File).MediaType
					for _, accepted := range acceptedImageTypes {
						if t == accepted {
							return true
						}
					}
					return false
				},
				Message: "Only .jpg, .jpeg, .png and .webp formats are supported.",
			},
		},
	},
)

// CustomerFormSchema esquema que valida el form de crear cliente.
var CustomerFormSchema = customerSchema.Omit("id")
