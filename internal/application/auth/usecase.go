package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/registro-api/internal/application/dto"
	"github.com/jhoicas/registro-api/internal/domain"
	"github.com/jhoicas/registro-api/internal/domain/entity"
	"github.com/jhoicas/registro-api/internal/domain/form"
	"github.com/jhoicas/registro-api/internal/domain/repository"
	"github.com/jhoicas/registro-api/pkg/jwt"
)

// ProviderCredentials único proveedor de credenciales soportado.
const ProviderCredentials = "credentials"

// ErrorType discriminante del fallo de autenticación.
type ErrorType string

const (
	// ErrTypeCredentialsSignin credenciales incorrectas (usuario o password).
	ErrTypeCredentialsSignin ErrorType = "CredentialsSignin"
	// ErrTypeUnknownProvider proveedor de credenciales no soportado.
	ErrTypeUnknownProvider ErrorType = "UnknownProvider"
)

// Error fallo tipado de la capa de autenticación. Los fallos de
// infraestructura (ej: la DB caída) NO se envuelven en este tipo: se
// retornan tal cual para que propaguen hasta el caller.
type Error struct {
	Type ErrorType
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("auth %s", e.Type)
}

func (e *Error) Unwrap() error { return e.Err }

// Session sesión emitida tras un login exitoso.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y sign-in.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// SignIn verifica las credenciales del form (email, password) y emite la
// sesión JWT. Usuario inexistente o password incorrecto retornan *Error con
// tipo CredentialsSignin; un proveedor desconocido retorna *Error con otro
// tipo; los fallos del repositorio se retornan sin envolver.
func (uc *AuthUseCase) SignIn(ctx context.Context, provider string, fields *form.Values) (*Session, error) {
	if provider != ProviderCredentials {
		return nil, &Error{Type: ErrTypeUnknownProvider, Err: fmt.Errorf("proveedor %q", provider)}
	}
	email := textField(fields, "email")
	password := textField(fields, "password")

	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &Error{Type: ErrTypeCredentialsSignin, Err: domain.ErrUserNotFound}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &Error{Type: ErrTypeCredentialsSignin, Err: domain.ErrUnauthorized}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}, nil
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func textField(fields *form.Values, name string) string {
	v, ok := fields.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.AsText()
	return s
}
