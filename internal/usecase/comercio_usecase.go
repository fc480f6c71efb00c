package usecase

import (
	"context"

	"directorio/internal/domain/entity"
)

// CreateComercioInput defines the data required to register a comercio.
type CreateComercioInput struct {
	Nombre    string
	CIF       string
	Direccion string
	Email     string
	Telefono  string
}

// UpdateComercioInput carries a partial update. The owned page is not writable here.
type UpdateComercioInput struct {
	Nombre    *string
	Direccion *string
	Email     *string
	Telefono  *string
}

// CreateComercioOutput returns the comercio and the only token it will ever be issued.
type CreateComercioOutput struct {
	Comercio *entity.Comercio
	Token    string
}

// ComercioUsecase defines the comercio directory operations. Writes need an admin usuario.
type ComercioUsecase interface {
	List(ctx context.Context, input *ListInput) ([]*entity.Comercio, error)
	Get(ctx context.Context, cif string) (*entity.Comercio, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateComercioInput) (*CreateComercioOutput, error)
	Update(ctx context.Context, principal *entity.Principal, cif string, input *UpdateComercioInput) (*entity.Comercio, error)
	Delete(ctx context.Context, principal *entity.Principal, cif string, logico bool) (*entity.Comercio, error)
}
