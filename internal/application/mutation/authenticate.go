package mutation

import (
	"context"
	"errors"

	"github.com/jhoicas/registro-api/internal/application/auth"
	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/domain/form"
)

// AuthMutations handler de autenticación: delega la verificación al
// colaborador y mapea su taxonomía de fallos a los dos mensajes de usuario.
type AuthMutations struct {
	authn Authenticator
}

// NewAuthMutations construye el handler.
func NewAuthMutations(authn Authenticator) *AuthMutations {
	return &AuthMutations{authn: authn}
}

// Authenticate intenta el sign-in con el proveedor de credenciales.
// Fallo de credenciales → "Invalid credentials."; cualquier otro fallo de la
// capa de auth → "Something went wrong."; un fallo NO reconocido como de
// autenticación (ej: la DB caída) propaga como error en vez de convertirse
// en mensaje genérico. En éxito navega al dashboard llevando la sesión.
func (m *AuthMutations) Authenticate(ctx context.Context, prev *dto.MutationResult, fields *form.Values) (Outcome, error) {
	session, err := m.authn.SignIn(ctx, auth.ProviderCredentials, fields)
	if err != nil {
		var authErr *auth.Error
		if errors.As(err, &authErr) {
			switch authErr.Type {
			case auth.ErrTypeCredentialsSignin:
				return fail(&dto.MutationResult{Message: MsgInvalidCredentials}), nil
			default:
				return fail(&dto.MutationResult{Message: MsgSomethingWentWrong}), nil
			}
		}
		return Outcome{}, err
	}
	out := navigate(ViewDashboard)
	out.Session = session
	return out, nil
}
