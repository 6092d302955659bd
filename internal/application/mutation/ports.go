package mutation

import (
	"context"
	"time"

	"github.com/jhoicas/registro-api/internal/application/auth"
	"github.com/jhoicas/registro-api/internal/domain/form"
)

// Vistas lógicas del dashboard. Son a la vez la ruta de navegación tras una
// mutación exitosa y la clave de invalidación de caché de esa vista.
const (
	ViewDashboard = "/dashboard"
	ViewInvoices  = "/dashboard/invoices"
	ViewCustomers = "/dashboard/customers"
)

// ViewCache marca vistas cacheadas como obsoletas tras una mutación y sirve
// de read-through para el lado de lectura.
type ViewCache interface {
	Get(ctx context.Context, view string) ([]byte, bool)
	Set(ctx context.Context, view string, payload []byte, ttl time.Duration)
	// Invalidate elimina la vista del caché; la siguiente lectura va a la DB.
	Invalidate(ctx context.Context, view string) error
}

// ImageStore guarda el binario de una imagen y retorna la referencia estable
// (URL o path) para recuperarla. La clave se deriva del displayName; no hay
// garantía de idempotencia: el mismo nombre puede sobrescribir.
type ImageStore interface {
	Save(ctx context.Context, img *form.File, displayName string) (string, error)
}

// Authenticator colaborador externo de autenticación. Los fallos de
// credenciales llegan como *auth.Error; cualquier otro error es un fallo de
// infraestructura que debe propagar.
type Authenticator interface {
	SignIn(ctx context.Context, provider string, fields *form.Values) (*auth.Session, error)
}
