package repository

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// ComercioPatch carries a partial update. Pagina is deliberately absent: it is
// only written through AssignPagina and ClearPagina.
type ComercioPatch struct {
	Nombre    *string
	Direccion *string
	Email     *string
	Telefono  *string
}

// ComercioRepository defines the standard operations for comercio persistence.
type ComercioRepository interface {
	// Create persists a new comercio. Duplicate CIF or email returns ErrComercioAlreadyExists.
	Create(ctx context.Context, comercio *entity.Comercio) error

	// FindByCIF retrieves a comercio by its CIF, or ErrComercioNotFound.
	FindByCIF(ctx context.Context, cif string) (*entity.Comercio, error)

	// List returns every live comercio in insertion order.
	List(ctx context.Context) ([]*entity.Comercio, error)

	// Update applies the patch and returns the updated comercio.
	Update(ctx context.Context, cif string, patch *ComercioPatch) (*entity.Comercio, error)

	// SoftDelete hides the comercio from reads while keeping it in storage.
	SoftDelete(ctx context.Context, cif string) (*entity.Comercio, error)

	// HardDelete permanently removes the comercio.
	HardDelete(ctx context.Context, cif string) (*entity.Comercio, error)

	// AssignPagina links the web to the comercio only if it has no page yet.
	// It returns ErrComercioHasPagina when another web is already linked.
	AssignPagina(ctx context.Context, cif string, webID uuid.UUID) error

	// ClearPagina unlinks the comercio from its web.
	ClearPagina(ctx context.Context, cif string) error
}
