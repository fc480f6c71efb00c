package usecase

import (
	"context"

	"directorio/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new usuario.
type SignupInput struct {
	Nombre                string
	Email                 string
	Password              string
	Edad                  int
	Ciudad                string
	Rol                   entity.Rol // Defaults to usuario when empty.
	Intereses             []string
	PermiteRecibirOfertas bool
}

// SigninInput defines the credentials of a usuario.
type SigninInput struct {
	Email    string
	Password string
}

// UpdateUsuarioInput carries a partial update of the caller's own account. Nil fields are left untouched.
type UpdateUsuarioInput struct {
	Nombre                *string
	Email                 *string
	Password              *string
	Edad                  *int
	Ciudad                *string
	Intereses             *[]string
	PermiteRecibirOfertas *bool
}

// ListUsuariosInput lists the usuarios of a city that accept offers.
type ListUsuariosInput struct {
	Ciudad string
	ListInput
}

// --- Output DTOs ---

// SigninOutput returns the issued token.
type SigninOutput struct {
	Token   string
	Usuario *entity.Usuario
}

// UsuarioUsecase defines the account operations of end-users.
type UsuarioUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.Usuario, error)
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)
	UpdateSelf(ctx context.Context, principal *entity.Principal, input *UpdateUsuarioInput) (*entity.Usuario, error)
	DeleteSelf(ctx context.Context, principal *entity.Principal, logico bool) (*entity.Usuario, error)
	ListByCiudad(ctx context.Context, input *ListUsuariosInput) ([]*entity.Usuario, error)
}
